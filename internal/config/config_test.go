package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateSheetsBackend(t *testing.T) {
	cfg := &Config{
		TelegramToken:     "123:abc",
		GoogleCredentials: `{"type":"service_account"}`,
		SpreadsheetID:     "sheet-id",
		SheetName:         "Ledger",
		Backend:           BackendSheets,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{Backend: BackendSheets}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"TELEGRAM_TOKEN", "GOOGLE_CREDENTIALS_JSON", "GOOGLE_SPREADSHEET_ID"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error missing %q: %v", want, err)
		}
	}
}

func TestValidateMemoryBackendNeedsNoSheets(t *testing.T) {
	cfg := &Config{TelegramToken: "123:abc", Backend: BackendMemory}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend should not require sheets config: %v", err)
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{TelegramToken: "123:abc", Backend: "postgres"}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "LEDGER_BACKEND") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCredentialsJSONInline(t *testing.T) {
	cfg := &Config{GoogleCredentials: ` {"type":"service_account"} `}
	b, err := cfg.CredentialsJSON()
	if err != nil || !strings.Contains(string(b), "service_account") {
		t.Fatalf("unexpected: b=%q err=%v", b, err)
	}
}

func TestCredentialsJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	cfg := &Config{GoogleCredentials: path}
	b, err := cfg.CredentialsJSON()
	if err != nil || !strings.Contains(string(b), "service_account") {
		t.Fatalf("unexpected: b=%q err=%v", b, err)
	}
}

func TestCredentialsJSONMissingFile(t *testing.T) {
	cfg := &Config{GoogleCredentials: "/does/not/exist.json"}
	if _, err := cfg.CredentialsJSON(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
