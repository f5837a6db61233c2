// Package engine implements the material consumption calculation core:
// rounding and packaging rules, the formula evaluators, and the orchestrator
// that turns user inputs and a product's technical-data-sheet rate into a
// displayable result.
package engine

import (
	"fmt"

	"github.com/smirnovd/stroycalc/internal/model"
)

// sheetReserveThreshold is how close (in sheets) the effective area may come
// to the next whole-sheet boundary before we advise buying a spare sheet for
// cutting errors.
const sheetReserveThreshold = 0.05

// Calculator is a formula bound to its category's parameters. It is pure and
// safe for concurrent use; Calculate may be invoked at slider-drag frequency.
type Calculator struct {
	formula model.Formula
	hints   []string
}

// New binds a formula descriptor to a category's inputs. Configuration errors
// (unknown kind, parameter referencing a missing input) are caught here, at
// registration time, and never surface during calculation.
func New(f model.Formula, inputs []model.Field, hints []string) (*Calculator, error) {
	has := func(key string) bool {
		for _, in := range inputs {
			if in.Key == key {
				return true
			}
		}
		return false
	}
	if err := f.Validate(has); err != nil {
		return nil, fmt.Errorf("bind formula: %w", err)
	}
	return &Calculator{formula: f, hints: hints}, nil
}

// Formula returns the bound formula descriptor.
func (c *Calculator) Formula() model.Formula {
	return c.formula
}

// Calculate computes the required amount of the given product for the given
// input values. It never fails: malformed values degrade to a zero result.
func (c *Calculator) Calculate(values map[string]float64, p model.Product) model.Result {
	var ev evaluation
	switch c.formula.Kind {
	case model.FormulaArea:
		ev = evalArea(values, p, c.formula)
	case model.FormulaSheets:
		ev = evalSheets(values, p, c.formula)
	case model.FormulaPieces:
		ev = evalPieces(values, p, c.formula)
	default:
		// Unreachable: New rejects unknown kinds.
		return model.Result{}
	}

	res := model.Result{
		Amount:  ev.amount,
		Unit:    c.unitLabel(ev, p),
		Details: ev.details,
	}

	// Weight only makes sense for mass-packaged materials (bags of plaster,
	// adhesive), not for sheets counted by covered area.
	if ev.packaged && p.PackSize > 0 && p.Unit.Quantity == model.QuantityKg {
		res.TotalWeight = RoundTo(ev.amount*p.PackSize, 2)
	}

	if p.Price > 0 && ev.amount > 0 {
		res.EstimatedPrice = RoundTo(ev.amount*p.Price, 0)
	}

	res.Recommendations = c.recommend(ev)
	return res
}

// unitLabel resolves the display unit: the authored result unit (with the
// sheet-width template substituted) when present, otherwise a fallback from
// the packaging state and physical quantity.
func (c *Calculator) unitLabel(ev evaluation, p model.Product) string {
	if label := c.formula.UnitLabel(); label != "" {
		return label
	}
	if ev.packaged {
		return "уп."
	}
	return quantityLabel(p.Unit.Quantity)
}

// recommend assembles the advisory lines: the category's static hints plus a
// dynamic spare-sheet hint when the cut plan leaves almost no margin. Advice
// never changes Amount.
func (c *Calculator) recommend(ev evaluation) []string {
	var recs []string
	recs = append(recs, c.hints...)

	if c.formula.Kind == model.FormulaSheets && ev.amount > 0 && ev.perSheet > 0 {
		margin := ev.amount - ev.effectiveArea/ev.perSheet
		if margin < sheetReserveThreshold {
			recs = append(recs, "Раскрой почти без остатка: возьмите один лист про запас на подрезку.")
		}
	}
	return recs
}
