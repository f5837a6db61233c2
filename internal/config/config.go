package config

import (
	"log"
	"os"
)

const (
	defaultPort    = "8080"
	defaultDBPath  = "./stroycalc.db"
	defaultCatalog = "static"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port          string
	DBPath        string
	CatalogSource string // "static" or "db"
	BaseURL       string // public URL prefix for product links on estimates
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		Port:          os.Getenv("PORT"),
		DBPath:        os.Getenv("DB_PATH"),
		CatalogSource: os.Getenv("CATALOG_SOURCE"),
		BaseURL:       os.Getenv("BASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.CatalogSource == "" {
		cfg.CatalogSource = defaultCatalog
	}

	if cfg.CatalogSource != "static" && cfg.CatalogSource != "db" {
		log.Printf("warning: unknown CATALOG_SOURCE %q, falling back to static", cfg.CatalogSource)
		cfg.CatalogSource = defaultCatalog
	}

	return cfg
}
