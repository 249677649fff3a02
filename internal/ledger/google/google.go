// Package google implements the ledger row store on top of a Google Sheets
// worksheet with the fixed two-column layout (Type, Amount).
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"

	"google.golang.org/api/googleapi"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// headerType is the expected first cell of the header row.
const headerType = "Type"

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// Ensure interface conformance
var _ ledger.Store = (*Client)(nil)

// New creates a Sheets-backed store from service-account credentials.
func New(ctx context.Context, spreadsheetID, sheetName string, credentialsJSON []byte) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if strings.TrimSpace(sheetName) == "" {
		return nil, errors.New("missing sheet name")
	}
	if len(credentialsJSON) == 0 {
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Append persists one entry as a (Type, Amount) row at the end of the sheet.
func (c *Client) Append(ctx context.Context, e core.Entry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	rng := fmt.Sprintf("%s!A:B", c.sheetName)
	vr := &gsheet.ValueRange{Values: [][]any{{string(e.Category), e.Amount.String()}}}

	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", classify("append row", err)
	}

	ref := rng
	if resp.Updates != nil && resp.Updates.UpdatedRange != "" {
		ref = resp.Updates.UpdatedRange
	}
	return ref, nil
}

// ReadAll loads every ledger row in append order.
//
// Rows with an unknown category or an unparseable amount are skipped, not
// fatal: one warning per read reports how many were dropped. The header row
// is recognized by its Type cell and excluded from that count.
func (c *Client) ReadAll(ctx context.Context) ([]core.Entry, error) {
	rng := fmt.Sprintf("%s!A:B", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		Context(ctx).Do()
	if err != nil {
		return nil, classify("read rows", err)
	}

	entries := make([]core.Entry, 0, len(resp.Values))
	skipped := 0
	for i, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		typeCell := strings.TrimSpace(fmt.Sprint(row[0]))
		if i == 0 && strings.EqualFold(typeCell, headerType) {
			continue
		}
		e, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if skipped > 0 {
		slog.WarnContext(ctx, "Skipped malformed ledger rows",
			"sheet", c.sheetName, "skipped", skipped, "kept", len(entries))
	}
	return entries, nil
}

// Ping fetches spreadsheet metadata and checks the target worksheet exists.
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.describe(ctx, true)
	return err
}

// Describe returns the spreadsheet title and its worksheet names. Used by
// the connectivity-check binary.
func (c *Client) Describe(ctx context.Context) (string, []string, error) {
	return c.describe(ctx, false)
}

func (c *Client) describe(ctx context.Context, requireSheet bool) (string, []string, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("properties.title", "sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return "", nil, classify("get spreadsheet", err)
	}

	title := ""
	if resp.Properties != nil {
		title = resp.Properties.Title
	}
	names := make([]string, 0, len(resp.Sheets))
	found := false
	for _, s := range resp.Sheets {
		if s.Properties == nil {
			continue
		}
		names = append(names, s.Properties.Title)
		if s.Properties.Title == c.sheetName {
			found = true
		}
	}
	if requireSheet && !found {
		return title, names, fmt.Errorf("%w: worksheet %q not found in %q", ledger.ErrSchema, c.sheetName, title)
	}
	return title, names, nil
}

// parseRow converts one raw sheet row into a typed entry.
func parseRow(row []any) (core.Entry, bool) {
	if len(row) < 2 {
		return core.Entry{}, false
	}
	cat, err := core.ParseCategory(fmt.Sprint(row[0]))
	if err != nil {
		return core.Entry{}, false
	}
	s := strings.TrimSpace(fmt.Sprint(row[1]))
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil || amount.IsNegative() {
		return core.Entry{}, false
	}
	return core.Entry{Category: cat, Amount: amount}, true
}

// classify maps Sheets API failures onto the ledger error taxonomy.
func classify(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusNotFound:
			// Bad range or missing spreadsheet/worksheet.
			return fmt.Errorf("%s: %w: %v", op, ledger.ErrSchema, err)
		default:
			return fmt.Errorf("%s: %w: %v", op, ledger.ErrUnavailable, err)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, ledger.ErrUnavailable, err)
}
