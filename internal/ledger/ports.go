package ledger

import (
	"context"
	"errors"

	"ledgerbot/internal/core"
)

// Ports for outbound row-store adapters.
type (
	EntryAppender interface {
		Append(ctx context.Context, e core.Entry) (rowRef string, err error)
	}

	EntryReader interface {
		// ReadAll returns every persisted entry in append order, fully
		// loaded into memory. Ledgers are assumed small (personal use).
		ReadAll(ctx context.Context) ([]core.Entry, error)
	}

	// Store is the full row-store contract the bot is wired against.
	Store interface {
		EntryAppender
		EntryReader

		// Ping verifies the backing store is reachable. Used once at
		// startup, where failure is fatal.
		Ping(ctx context.Context) error
	}
)

var (
	// ErrUnavailable marks network, auth and quota failures: the store
	// exists but cannot be reached right now.
	ErrUnavailable = errors.New("ledger store unavailable")

	// ErrSchema marks a missing spreadsheet/worksheet or a target range
	// that does not match the expected two-column layout.
	ErrSchema = errors.New("ledger sheet schema error")
)
