// Package seed loads the embedded static catalog into SQLite so a fresh
// database serves the same categories as the static source.
package seed

import (
	"database/sql"
	"fmt"

	"github.com/smirnovd/stroycalc/internal/model"
)

// Stats contains seed operation counters.
type Stats struct {
	Categories int
	Products   int
	Skipped    int
}

// Run inserts the given categories in one transaction. It is idempotent: a
// category whose slug already exists is left untouched, so reseeding a
// database an admin has edited never clobbers their changes.
func Run(db *sql.DB, categories []model.Category) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for _, c := range categories {
		inserted, err := seedCategory(tx, c, &stats)
		if err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
		if !inserted {
			stats.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}
	return stats, nil
}

func seedCategory(tx *sql.Tx, c model.Category, stats *Stats) (bool, error) {
	var exists int
	err := tx.QueryRow(`SELECT COUNT(1) FROM categories WHERE slug = ?`, c.Slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category %s: %w", c.Slug, err)
	}
	if exists > 0 {
		return false, nil
	}

	if _, err := tx.Exec(`
		INSERT INTO categories (slug, name, description, icon, position)
		VALUES (?, ?, ?, ?, ?)`,
		c.Slug, c.Name, c.Description, c.Icon, stats.Categories); err != nil {
		return false, fmt.Errorf("insert category %s: %w", c.Slug, err)
	}
	stats.Categories++

	for i, hint := range c.Hints {
		if _, err := tx.Exec(`
			INSERT INTO category_hints (category_slug, position, hint)
			VALUES (?, ?, ?)`, c.Slug, i, hint); err != nil {
			return false, fmt.Errorf("insert hint for %s: %w", c.Slug, err)
		}
	}

	for i, in := range c.Inputs {
		if _, err := tx.Exec(`
			INSERT INTO inputs (category_slug, key, label, unit, default_value, min, max, step, tooltip, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Slug, in.Key, in.Label, in.Unit, in.Default, in.Min, in.Max, in.Step, in.Tooltip, i); err != nil {
			return false, fmt.Errorf("insert input %s for %s: %w", in.Key, c.Slug, err)
		}
	}

	for i, p := range c.Products {
		if err := seedProduct(tx, c.Slug, p, i); err != nil {
			return false, err
		}
		stats.Products++
	}

	f := c.Formula
	if _, err := tx.Exec(`
		INSERT INTO formulas (category_slug, kind, area_key, thickness_key, layers_key,
		                      length_key, width_key, waste_percent, sheet_width,
		                      quantity_key, result_unit, result_unit_template)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Slug, string(f.Kind), f.AreaKey, f.ThicknessKey, f.LayersKey,
		f.LengthKey, f.WidthKey, f.WastePercent, f.SheetWidth,
		f.QuantityKey, f.ResultUnit, f.ResultUnitTemplate); err != nil {
		return false, fmt.Errorf("insert formula for %s: %w", c.Slug, err)
	}

	return true, nil
}

func seedProduct(tx *sql.Tx, slug string, p model.Product, position int) error {
	packSize := sql.NullFloat64{Float64: p.PackSize, Valid: p.PackSize > 0}
	price := sql.NullFloat64{Float64: p.Price, Valid: p.Price > 0}

	if _, err := tx.Exec(`
		INSERT INTO products (id, category_slug, url_id, name, consumption, unit_label,
		                      pack_size, price, size_text, tooltip, catalog_slug, sub_slug, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, slug, p.URLID, p.Name, p.Consumption, p.UnitLabel,
		packSize, price, p.SizeText, p.Tooltip, p.CategorySlug, p.SubSlug, position); err != nil {
		return fmt.Errorf("insert product %s: %w", p.ID, err)
	}

	for size, variantPrice := range p.PricesBySize {
		if _, err := tx.Exec(`
			INSERT INTO product_prices (product_id, size, price)
			VALUES (?, ?, ?)`, p.ID, size, variantPrice); err != nil {
			return fmt.Errorf("insert variant price %s/%s: %w", p.ID, size, err)
		}
	}
	return nil
}
