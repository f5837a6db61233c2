package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/smirnovd/stroycalc/internal/model"
)

// evaluation is the outcome of a single formula run before the orchestrator
// attaches weight, price and recommendations.
type evaluation struct {
	raw           float64 // physical quantity before packaging (kg, l or sheets)
	amount        float64 // final reportable amount
	packaged      bool    // amount counts whole packages/sheets
	effectiveArea float64 // sheets only: area after waste uplift
	perSheet      float64 // sheets only: m² covered per sheet
	details       string
}

// evalArea implements the consumption-proportional formula. The consumption
// rate is treated as already normalized per unit of thickness or per layer,
// so the multiplier is a straight scalar multiply.
func evalArea(values map[string]float64, p model.Product, f model.Formula) evaluation {
	area := sanitize(values[f.AreaKey])

	multiplier := 1.0
	context := ""
	switch {
	case f.ThicknessKey != "":
		thickness := sanitize(values[f.ThicknessKey])
		multiplier = thickness
		context = fmt.Sprintf(" при толщине %s %s", formatNum(thickness), thicknessUnit(p.Unit))
	case f.LayersKey != "":
		layers := sanitize(values[f.LayersKey])
		multiplier = layers
		context = fmt.Sprintf(" в %s %s", formatNum(layers), layersNoun(layers))
	}

	raw := area * p.Consumption * multiplier
	if math.IsNaN(raw) || raw < 0 {
		raw = 0
	}

	ev := evaluation{raw: raw}
	if p.PackSize > 0 {
		ev.packaged = true
		ev.amount = CeilPackages(raw, p.PackSize)
	} else {
		// Sold loose (paint, primer by the liter): report the raw quantity.
		ev.amount = RoundTo(raw, 1)
	}
	ev.details = fmt.Sprintf("%s %s на %s м²%s",
		formatNum(RoundTo(raw, 2)), quantityLabel(p.Unit.Quantity), formatNum(area), context)
	return ev
}

// evalSheets implements panel/sheet tiling with a waste allowance. The area
// comes from a single area input, or from length × width for profiled-sheet
// roofing and fencing.
func evalSheets(values map[string]float64, p model.Product, f model.Formula) evaluation {
	var area float64
	if f.AreaKey != "" {
		area = sanitize(values[f.AreaKey])
	} else {
		area = sanitize(values[f.LengthKey]) * sanitize(values[f.WidthKey])
	}

	effective := ApplyWaste(area, f.WastePercent)

	ev := evaluation{
		packaged:      true,
		effectiveArea: effective,
		perSheet:      p.Consumption, // m² covered per sheet/pack
	}
	if effective > 0 && p.Consumption > 0 {
		ev.raw = math.Ceil(effective / p.Consumption)
		ev.amount = ev.raw
	}
	ev.details = fmt.Sprintf("%s м² с учётом запаса %s%%",
		formatNum(RoundTo(effective, 2)), formatNum(f.WastePercent))
	return ev
}

// evalPieces implements the per-piece multiplier: quantity × kg per piece,
// rounded up to whole bags.
func evalPieces(values map[string]float64, p model.Product, f model.Formula) evaluation {
	quantity := sanitize(values[f.QuantityKey])
	raw := quantity * p.Consumption

	ev := evaluation{
		raw:      raw,
		packaged: true,
		amount:   CeilPackages(raw, p.PackSize),
	}
	if p.PackSize <= 0 {
		// No packaging authored: report the raw mass directly.
		ev.packaged = false
		ev.amount = RoundTo(raw, 1)
	}
	ev.details = fmt.Sprintf("%s кг на %s шт",
		formatNum(RoundTo(raw, 2)), formatNum(quantity))
	return ev
}

// formatNum renders a number without trailing zeros ("3", "1.5", "0.75").
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quantityLabel(q model.Quantity) string {
	switch q {
	case model.QuantityLiter:
		return "л"
	case model.QuantityM2:
		return "м²"
	case model.QuantityPcs:
		return "шт"
	default:
		return "кг"
	}
}

func thicknessUnit(u model.ConsumptionUnit) string {
	if u.PerThickness == model.PerMm {
		return "мм"
	}
	return "см"
}

// layersNoun picks the Russian plural form for "слой".
func layersNoun(n float64) string {
	i := int(n)
	if float64(i) != n {
		return "слоя"
	}
	switch {
	case i%100 >= 11 && i%100 <= 14:
		return "слоёв"
	case i%10 == 1:
		return "слой"
	case i%10 >= 2 && i%10 <= 4:
		return "слоя"
	default:
		return "слоёв"
	}
}
