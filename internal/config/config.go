package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendSheets = "sheets"
	BackendMemory = "memory"
)

type Config struct {
	// Telegram
	TelegramToken string

	// Google Sheets
	GoogleCredentials string // service-account key: file path or inline JSON
	SpreadsheetID     string
	SheetName         string

	// Backend selection
	Backend string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	creds := getEnv("GOOGLE_CREDENTIALS_JSON", "")
	if creds == "" {
		creds = getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")
	}

	return &Config{
		TelegramToken:     getEnv("TELEGRAM_TOKEN", ""),
		GoogleCredentials: creds,
		SpreadsheetID:     getEnv("GOOGLE_SPREADSHEET_ID", ""),
		SheetName:         getEnv("GOOGLE_SHEET_NAME", "Ledger"),
		Backend:           getEnv("LEDGER_BACKEND", BackendSheets),
	}
}

// Validate checks the configuration and reports every problem at once.
// Any problem is fatal at startup.
func (c *Config) Validate() error {
	var errs []string

	if c.TelegramToken == "" {
		errs = append(errs, "TELEGRAM_TOKEN must be set")
	}

	switch c.Backend {
	case BackendSheets:
		if c.GoogleCredentials == "" {
			errs = append(errs, "GOOGLE_CREDENTIALS_JSON must be a service account key file path or the key JSON itself")
		}
		if c.SpreadsheetID == "" {
			errs = append(errs, "GOOGLE_SPREADSHEET_ID must be set")
		}
		if c.SheetName == "" {
			errs = append(errs, "GOOGLE_SHEET_NAME cannot be empty")
		}
	case BackendMemory:
		// Nothing else required; the ledger lives in process memory.
	default:
		errs = append(errs, fmt.Sprintf("invalid LEDGER_BACKEND '%s': must be one of [%s %s]", c.Backend, BackendSheets, BackendMemory))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// CredentialsJSON resolves the service-account setting to raw key bytes.
// The value is either the key JSON itself or a path to a file holding it.
func (c *Config) CredentialsJSON() ([]byte, error) {
	v := strings.TrimSpace(c.GoogleCredentials)
	if v == "" {
		return nil, fmt.Errorf("missing service account credentials")
	}
	if strings.HasPrefix(v, "{") {
		return []byte(v), nil
	}
	b, err := os.ReadFile(v)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return b, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
