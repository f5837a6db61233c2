package seed

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/smirnovd/stroycalc/internal/model"
)

// UpsertStats contains price-list upsert counters.
type UpsertStats struct {
	Inserted int
	Updated  int
}

// UpsertProducts merges an imported price list into an existing category.
// Products are matched by name: a match updates the consumption rate, pack
// size, and price; anything else is appended. The category must already exist.
func UpsertProducts(db *sql.DB, slug string, products []model.Product) (UpsertStats, error) {
	var exists int
	if err := db.QueryRow(`SELECT COUNT(1) FROM categories WHERE slug = ?`, slug).Scan(&exists); err != nil {
		return UpsertStats{}, fmt.Errorf("check category %s: %w", slug, err)
	}
	if exists == 0 {
		return UpsertStats{}, fmt.Errorf("category %s does not exist", slug)
	}

	tx, err := db.Begin()
	if err != nil {
		return UpsertStats{}, fmt.Errorf("begin upsert transaction: %w", err)
	}

	var position int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(position), -1) + 1 FROM products WHERE category_slug = ?`, slug).Scan(&position); err != nil {
		_ = tx.Rollback()
		return UpsertStats{}, fmt.Errorf("read product positions for %s: %w", slug, err)
	}

	stats := UpsertStats{}
	for _, p := range products {
		var existingID string
		err := tx.QueryRow(`SELECT id FROM products WHERE category_slug = ? AND name = ?`, slug, p.Name).Scan(&existingID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			if err := seedProduct(tx, slug, p, position); err != nil {
				_ = tx.Rollback()
				return UpsertStats{}, err
			}
			position++
			stats.Inserted++
		case err != nil:
			_ = tx.Rollback()
			return UpsertStats{}, fmt.Errorf("look up product %q in %s: %w", p.Name, slug, err)
		default:
			packSize := sql.NullFloat64{Float64: p.PackSize, Valid: p.PackSize > 0}
			price := sql.NullFloat64{Float64: p.Price, Valid: p.Price > 0}
			if _, err := tx.Exec(`
				UPDATE products SET consumption = ?, unit_label = ?, pack_size = ?, price = ?
				WHERE id = ?`,
				p.Consumption, p.UnitLabel, packSize, price, existingID); err != nil {
				_ = tx.Rollback()
				return UpsertStats{}, fmt.Errorf("update product %q in %s: %w", p.Name, slug, err)
			}
			stats.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return UpsertStats{}, fmt.Errorf("commit upsert transaction: %w", err)
	}
	return stats, nil
}
