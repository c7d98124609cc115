// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_PATH", "test.db")
	os.Setenv("ADMIN_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "test.db" {
		t.Errorf("expected database path test.db, got %s", cfg.DatabasePath)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ADMIN_KEY", "env-key")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "other.db", "-admin-key", "cli-key"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminKey != "cli-key" {
		t.Errorf("CLI should override env: expected cli-key, got %s", cfg.AdminKey)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_KEY", "test-key")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "platform.db" {
		t.Errorf("expected default database path platform.db, got %s", cfg.DatabasePath)
	}
}

func TestParseFlags_AdminKeyRequired(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Fatal("expected error when ADMIN_KEY is missing")
	}
}
