// stroycalc — material consumption calculator API
//
// Serves the building-material catalog and consumption calculations over
// a JSON HTTP API, with PDF and XLSX estimate downloads.
//
// Build:
//   go build -o stroycalc ./cmd/stroycalc
//
// Configuration (environment, .env supported):
//   PORT            listen port, default 8080
//   DB_PATH         SQLite database path, default ./stroycalc.db
//   CATALOG_SOURCE  "static" (embedded catalog) or "db", default static
//   BASE_URL        public URL prefix for product links on estimates

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/smirnovd/stroycalc/internal/catalog"
	"github.com/smirnovd/stroycalc/internal/config"
	"github.com/smirnovd/stroycalc/internal/db"
	"github.com/smirnovd/stroycalc/internal/migrations"
	"github.com/smirnovd/stroycalc/internal/seed"
	"github.com/smirnovd/stroycalc/internal/server"
)

func main() {
	cfg := config.Load()

	materials, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	if len(materials) == 0 {
		log.Fatal("catalog resolved to zero categories")
	}

	// A user-authored catalog file overlays the base catalog by slug.
	customPath, err := catalog.DefaultCustomPath()
	if err == nil {
		custom, err := catalog.LoadCustom(customPath)
		if err != nil {
			log.Printf("warning: skipping custom catalog %s: %v", customPath, err)
		} else if len(custom) > 0 {
			materials = catalog.Merge(materials, catalog.NormalizeAll(custom))
			log.Printf("merged %d custom categories from %s", len(custom), customPath)
		}
	}

	srv := server.New(materials, cfg.BaseURL)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (%d categories, source=%s)", addr, len(materials), cfg.CatalogSource)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// loadCatalog resolves the configured catalog source. The DB source migrates
// and seeds on startup, so a fresh database serves the same catalog as the
// static source.
func loadCatalog(cfg config.Config) ([]catalog.Material, error) {
	if cfg.CatalogSource == "static" {
		return catalog.Resolve(catalog.Static()), nil
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		return nil, err
	}
	stats, err := seed.Run(database, catalog.Static())
	if err != nil {
		return nil, err
	}
	if stats.Categories > 0 {
		log.Printf("seeded %d categories, %d products (%d already present)",
			stats.Categories, stats.Products, stats.Skipped)
	}

	payload, err := catalog.Load(context.Background(), database)
	if err != nil {
		return nil, err
	}
	return catalog.NormalizeAll(payload), nil
}
