package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CATALOG_SOURCE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./stroycalc.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.CatalogSource != "static" {
		t.Errorf("catalog source = %q, want static", cfg.CatalogSource)
	}
}

func TestLoadRejectsUnknownCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "ftp")
	cfg := Load()
	if cfg.CatalogSource != "static" {
		t.Errorf("catalog source = %q, want static fallback", cfg.CatalogSource)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/c.db")
	t.Setenv("CATALOG_SOURCE", "db")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/c.db" || cfg.CatalogSource != "db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
