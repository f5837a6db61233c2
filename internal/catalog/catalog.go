// Package catalog resolves calculator categories from their two sources —
// the embedded static catalog and the database-backed catalog — into one
// engine-ready form. Whatever the source, every category passes through the
// same normalization and validation path, so the engine never sees a
// malformed row.
package catalog

import (
	"fmt"
	"log"

	"github.com/smirnovd/stroycalc/internal/engine"
	"github.com/smirnovd/stroycalc/internal/model"
)

// Material is a fully resolved category with its calculator bound. The
// calculator is built exactly once per resolution, not once per calculation.
type Material struct {
	model.Category
	calc *engine.Calculator
}

// Calculate runs the category's bound formula for the given product.
func (m *Material) Calculate(values map[string]float64, p model.Product) model.Result {
	return m.calc.Calculate(values, p)
}

// CalculateProduct looks up a product by ID, applies the selected size
// variant, and calculates. It returns the shadow product actually used so
// callers (cart hand-off, estimate export) see the resolved price and pack.
func (m *Material) CalculateProduct(values map[string]float64, productID, size string) (model.Result, model.Product, error) {
	p := m.FindProduct(productID)
	if p == nil {
		return model.Result{}, model.Product{}, fmt.Errorf("category %s: no product %q", m.Slug, productID)
	}
	shadow := WithSize(*p, size)
	return m.calc.Calculate(values, shadow), shadow, nil
}

// Bind validates an authored category and attaches its calculator.
func Bind(c model.Category) (Material, error) {
	if err := validate(c); err != nil {
		return Material{}, err
	}
	calc, err := engine.New(c.Formula, c.Inputs, c.Hints)
	if err != nil {
		return Material{}, fmt.Errorf("category %s: %w", c.Slug, err)
	}
	return Material{Category: c, calc: calc}, nil
}

// Resolve binds a set of authored categories, dropping the invalid ones with
// a logged warning. A broken upstream row degrades the catalog, never the
// process.
func Resolve(categories []model.Category) []Material {
	materials := make([]Material, 0, len(categories))
	for _, c := range categories {
		m, err := Bind(c)
		if err != nil {
			log.Printf("warning: dropping category %q: %v", c.Slug, err)
			continue
		}
		materials = append(materials, m)
	}
	return materials
}

// Find returns the material with the given slug, or nil.
func Find(materials []Material, slug string) *Material {
	for i := range materials {
		if materials[i].Slug == slug {
			return &materials[i]
		}
	}
	return nil
}

// validate enforces the authoring invariants that the engine relies on.
func validate(c model.Category) error {
	if c.Slug == "" {
		return fmt.Errorf("category without slug")
	}
	if len(c.Products) == 0 {
		return fmt.Errorf("category %s has no products", c.Slug)
	}
	if len(c.Inputs) == 0 {
		return fmt.Errorf("category %s has no inputs", c.Slug)
	}
	for _, f := range c.Inputs {
		if !f.Valid() {
			return fmt.Errorf("category %s: input %q has incoherent bounds", c.Slug, f.Key)
		}
	}
	for _, p := range c.Products {
		if p.Consumption <= 0 {
			return fmt.Errorf("category %s: product %q has non-positive consumption", c.Slug, p.Name)
		}
		// A thickness multiplier is only meaningful when the TDS rate is
		// authored per unit of thickness. The original data never enforced
		// this; we reject it here instead of silently trusting config.
		if c.Formula.ThicknessKey != "" && !p.Unit.VariesWithThickness() {
			return fmt.Errorf("category %s: product %q has thickness-independent unit %q but the formula reads %q",
				c.Slug, p.Name, p.UnitLabel, c.Formula.ThicknessKey)
		}
	}
	return nil
}
