package bot

import (
	"context"
	"strings"
	"testing"

	"ledgerbot/internal/ledger"
	"ledgerbot/internal/ledger/memory"
)

func dispatch(t *testing.T, d *Dispatcher, command, args string) string {
	t.Helper()
	reply, handled := d.Dispatch(context.Background(), command, args)
	if !handled {
		t.Fatalf("command %q not handled", command)
	}
	return reply
}

func TestStartReply(t *testing.T) {
	d := NewDispatcher(memory.New(), nil)
	reply := dispatch(t, d, "start", "")
	for _, want := range []string{"/addincome", "/addexpense", "/balance"} {
		if !strings.Contains(reply, want) {
			t.Fatalf("start reply missing %q: %q", want, reply)
		}
	}
}

func TestAddThenBalance(t *testing.T) {
	store := memory.New()
	d := NewDispatcher(store, nil)

	if got := dispatch(t, d, "addincome", "1000"); !strings.Contains(got, "1000") {
		t.Fatalf("confirmation missing amount: %q", got)
	}
	dispatch(t, d, "addincome", "500")
	dispatch(t, d, "addexpense", "300")

	reply := dispatch(t, d, "balance", "")
	for _, want := range []string{"Income: 1500", "Expense: 300", "Total: 1200"} {
		if !strings.Contains(reply, want) {
			t.Fatalf("balance reply missing %q: %q", want, reply)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 stored rows, got %d", store.Len())
	}
}

func TestBalanceOnEmptyLedger(t *testing.T) {
	d := NewDispatcher(memory.New(), nil)
	reply := dispatch(t, d, "balance", "")
	for _, want := range []string{"Income: 0", "Expense: 0", "Total: 0"} {
		if !strings.Contains(reply, want) {
			t.Fatalf("empty balance reply missing %q: %q", want, reply)
		}
	}
}

func TestInvalidAmountArguments(t *testing.T) {
	store := memory.New()
	d := NewDispatcher(store, nil)

	// Missing and non-numeric arguments produce the same usage reply.
	cases := []struct {
		command string
		args    string
		usage   string
	}{
		{"addincome", "abc", replyUsageIncome},
		{"addincome", "", replyUsageIncome},
		{"addincome", "   ", replyUsageIncome},
		{"addincome", "0", replyUsageIncome},
		{"addincome", "-50", replyUsageIncome},
		{"addexpense", "12.3.4", replyUsageExpense},
		{"addexpense", "", replyUsageExpense},
	}
	for _, tc := range cases {
		if got := dispatch(t, d, tc.command, tc.args); got != tc.usage {
			t.Fatalf("%s %q: got %q, expected %q", tc.command, tc.args, got, tc.usage)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("invalid commands appended %d rows", store.Len())
	}
}

func TestAmountWithTrailingText(t *testing.T) {
	store := memory.New()
	d := NewDispatcher(store, nil)
	reply := dispatch(t, d, "addexpense", "42.50 groceries")
	if !strings.Contains(reply, "42.5") {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored row, got %d", store.Len())
	}
}

func TestStoreFailureIsReportedAndRecoverable(t *testing.T) {
	store := memory.New()
	d := NewDispatcher(store, nil)

	store.ReadErr = ledger.ErrUnavailable
	if got := dispatch(t, d, "balance", ""); got != replyStoreError {
		t.Fatalf("expected store error reply, got %q", got)
	}

	// The next command must still be served.
	store.ReadErr = nil
	dispatch(t, d, "addincome", "10")
	if got := dispatch(t, d, "balance", ""); !strings.Contains(got, "Income: 10") {
		t.Fatalf("dispatcher did not recover: %q", got)
	}
}

func TestAppendFailureDoesNotStoreRow(t *testing.T) {
	store := memory.New()
	store.AppendErr = ledger.ErrUnavailable
	d := NewDispatcher(store, nil)

	if got := dispatch(t, d, "addincome", "100"); got != replyStoreError {
		t.Fatalf("expected store error reply, got %q", got)
	}
	if store.Len() != 0 {
		t.Fatalf("failed append stored a row")
	}
}

func TestUnknownCommandNotHandled(t *testing.T) {
	d := NewDispatcher(memory.New(), nil)
	if _, handled := d.Dispatch(context.Background(), "help", ""); handled {
		t.Fatalf("unknown command should not be handled")
	}
}
