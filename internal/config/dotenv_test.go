package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `
# comment
PORT=9191
export DB_PATH="/tmp/test.db"
BASE_URL='https://store.example'
MALFORMED LINE
EXISTING=from-file
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("EXISTING", "from-env")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("PORT"); got != "9191" {
		t.Errorf("PORT = %q", got)
	}
	if got := os.Getenv("DB_PATH"); got != "/tmp/test.db" {
		t.Errorf("DB_PATH = %q, quotes should be stripped", got)
	}
	if got := os.Getenv("BASE_URL"); got != "https://store.example" {
		t.Errorf("BASE_URL = %q, quotes should be stripped", got)
	}
	if got := os.Getenv("EXISTING"); got != "from-env" {
		t.Errorf("EXISTING = %q, existing env must not be overwritten", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
}
