// Command sheets-check verifies Google Sheets connectivity with the same
// credentials the bot uses and prints what the service account can see.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"ledgerbot/internal/config"
	gsheet "ledgerbot/internal/ledger/google"
)

func main() {
	cfg := config.Load()

	creds, err := cfg.CredentialsJSON()
	if err != nil {
		log.Fatalf("credentials: %v", err)
	}
	if cfg.SpreadsheetID == "" {
		log.Fatalf("set GOOGLE_SPREADSHEET_ID")
	}

	ctx := context.Background()
	cli, err := gsheet.New(ctx, cfg.SpreadsheetID, cfg.SheetName, creds)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}

	title, names, err := cli.Describe(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Could not open the spreadsheet:")
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Check that the sheet is shared with the service account's client_email.")
		os.Exit(1)
	}

	fmt.Printf("✅ Access OK. Spreadsheet: %s\n", title)
	for _, n := range names {
		fmt.Printf("- %s\n", n)
	}
}
