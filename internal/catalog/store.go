package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Load reads the full catalog from SQLite as API payloads, one query per
// concern. The rows funnel through the same Normalize path as a network
// payload, so both sources obey identical defaults and validation. It runs
// once per catalog resolution, not per calculation.
func Load(ctx context.Context, db *sql.DB) ([]APICategory, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT slug, name, description, icon
		FROM categories
		ORDER BY position, slug`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var payload []APICategory
	for rows.Next() {
		var c APICategory
		if err := rows.Scan(&c.Slug, &c.Name, &c.Description, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		payload = append(payload, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	for i := range payload {
		c := &payload[i]
		if c.Products, err = loadProducts(ctx, db, c.Slug); err != nil {
			return nil, err
		}
		if c.Inputs, err = loadInputs(ctx, db, c.Slug); err != nil {
			return nil, err
		}
		if c.Formula, err = loadFormula(ctx, db, c.Slug); err != nil {
			return nil, err
		}
		if c.Hints, err = loadHints(ctx, db, c.Slug); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func loadProducts(ctx context.Context, db *sql.DB, slug string) ([]APIProduct, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, url_id, name, consumption, unit_label, pack_size, price,
		       size_text, tooltip, catalog_slug, sub_slug
		FROM products
		WHERE category_slug = ?
		ORDER BY position, id`, slug)
	if err != nil {
		return nil, fmt.Errorf("query products for %s: %w", slug, err)
	}
	defer rows.Close()

	var products []APIProduct
	for rows.Next() {
		var p APIProduct
		var packSize, price sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.URLID, &p.Name, &p.Consumption, &p.UnitLabel,
			&packSize, &price, &p.SizeText, &p.Tooltip, &p.CategorySlug, &p.SubSlug); err != nil {
			return nil, fmt.Errorf("scan product for %s: %w", slug, err)
		}
		p.PackSize = nullable(packSize)
		p.Price = nullable(price)
		if p.PricesBySize, err = loadPrices(ctx, db, p.ID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func loadPrices(ctx context.Context, db *sql.DB, productID string) (map[string]float64, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT size, price FROM product_prices WHERE product_id = ?`, productID)
	if err != nil {
		return nil, fmt.Errorf("query variant prices for %s: %w", productID, err)
	}
	defer rows.Close()

	var prices map[string]float64
	for rows.Next() {
		var size string
		var price float64
		if err := rows.Scan(&size, &price); err != nil {
			return nil, fmt.Errorf("scan variant price for %s: %w", productID, err)
		}
		if prices == nil {
			prices = make(map[string]float64)
		}
		prices[size] = price
	}
	return prices, rows.Err()
}

func loadInputs(ctx context.Context, db *sql.DB, slug string) ([]APIInput, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT key, label, unit, default_value, min, max, step, tooltip
		FROM inputs
		WHERE category_slug = ?
		ORDER BY position, key`, slug)
	if err != nil {
		return nil, fmt.Errorf("query inputs for %s: %w", slug, err)
	}
	defer rows.Close()

	var inputs []APIInput
	for rows.Next() {
		var in APIInput
		var def, min, max, step sql.NullFloat64
		if err := rows.Scan(&in.Key, &in.Label, &in.Unit, &def, &min, &max, &step, &in.Tooltip); err != nil {
			return nil, fmt.Errorf("scan input for %s: %w", slug, err)
		}
		in.Default = nullable(def)
		in.Min = nullable(min)
		in.Max = nullable(max)
		in.Step = nullable(step)
		inputs = append(inputs, in)
	}
	return inputs, rows.Err()
}

func loadFormula(ctx context.Context, db *sql.DB, slug string) (APIFormula, error) {
	var f APIFormula
	var waste, sheetWidth sql.NullFloat64
	err := db.QueryRowContext(ctx, `
		SELECT kind, area_key, thickness_key, layers_key, length_key, width_key,
		       waste_percent, sheet_width, quantity_key, result_unit, result_unit_template
		FROM formulas
		WHERE category_slug = ?`, slug).
		Scan(&f.Kind, &f.AreaKey, &f.ThicknessKey, &f.LayersKey, &f.LengthKey, &f.WidthKey,
			&waste, &sheetWidth, &f.QuantityKey, &f.ResultUnit, &f.ResultUnitTemplate)
	if errors.Is(err, sql.ErrNoRows) {
		// Leave the kind empty: Resolve drops the category with a warning.
		return APIFormula{}, nil
	}
	if err != nil {
		return APIFormula{}, fmt.Errorf("query formula for %s: %w", slug, err)
	}
	f.WastePercent = nullable(waste)
	f.SheetWidth = nullable(sheetWidth)
	return f, nil
}

func loadHints(ctx context.Context, db *sql.DB, slug string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT hint FROM category_hints WHERE category_slug = ? ORDER BY position`, slug)
	if err != nil {
		return nil, fmt.Errorf("query hints for %s: %w", slug, err)
	}
	defer rows.Close()

	var hints []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan hint for %s: %w", slug, err)
		}
		hints = append(hints, h)
	}
	return hints, rows.Err()
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
