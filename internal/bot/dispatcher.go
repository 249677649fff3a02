// Package bot contains the chat command dispatcher and the Telegram host
// that feeds it.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
)

const (
	replyStart = "Hi! I keep track of your income and expenses.\n" +
		"Commands:\n" +
		"/addincome <amount> - record income\n" +
		"/addexpense <amount> - record an expense\n" +
		"/balance - show the balance"

	replyUsageIncome  = "❌ Usage: /addincome 1000"
	replyUsageExpense = "❌ Usage: /addexpense 500"
	replyStoreError   = "⚠️ Could not reach the ledger. Try again later."
)

// Dispatcher maps inbound chat commands to ledger operations and formats
// the reply. It is stateless between invocations; the injected store is the
// only shared resource.
type Dispatcher struct {
	store ledger.Store
	log   *slog.Logger
}

func NewDispatcher(store ledger.Store, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{store: store, log: log}
}

// Dispatch handles one command and returns the reply text. handled is false
// for commands this bot does not recognize; the platform's own
// unknown-command behavior applies to those.
func (d *Dispatcher) Dispatch(ctx context.Context, command, args string) (reply string, handled bool) {
	switch command {
	case "start":
		return replyStart, true
	case "addincome":
		return d.addEntry(ctx, core.Income, args, replyUsageIncome), true
	case "addexpense":
		return d.addEntry(ctx, core.Expense, args, replyUsageExpense), true
	case "balance":
		return d.balance(ctx), true
	default:
		return "", false
	}
}

// addEntry parses the amount argument and appends one row. A missing and a
// non-numeric argument both collapse into the same usage reply on purpose.
func (d *Dispatcher) addEntry(ctx context.Context, cat core.Category, args, usage string) string {
	amount, err := core.ParseAmount(firstArg(args))
	if err != nil {
		return usage
	}

	ref, err := d.store.Append(ctx, core.Entry{Category: cat, Amount: amount})
	if err != nil {
		d.log.ErrorContext(ctx, "Failed to append ledger row",
			"error", err, "category", cat, "amount", amount.String())
		return replyStoreError
	}

	d.log.InfoContext(ctx, "Ledger row appended",
		"category", cat, "amount", amount.String(), "row_ref", ref)
	if cat == core.Income {
		return fmt.Sprintf("✅ Added income: %s", amount)
	}
	return fmt.Sprintf("✅ Added expense: %s", amount)
}

func (d *Dispatcher) balance(ctx context.Context) string {
	entries, err := d.store.ReadAll(ctx)
	if err != nil {
		d.log.ErrorContext(ctx, "Failed to read ledger rows", "error", err)
		return replyStoreError
	}

	snap := core.Aggregate(entries)
	return fmt.Sprintf("💰 Balance:\nIncome: %s\nExpense: %s\nTotal: %s",
		snap.Income, snap.Expense, snap.Balance)
}

// firstArg returns the first whitespace-separated token of the raw argument
// string. Trailing text after the amount is ignored, as the original command
// grammar only ever looked at one argument.
func firstArg(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
