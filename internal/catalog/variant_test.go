package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovd/stroycalc/internal/engine"
	"github.com/smirnovd/stroycalc/internal/model"
)

func TestParsePackSize(t *testing.T) {
	cases := []struct {
		size string
		want float64
		ok   bool
	}{
		{"18кг", 18, true},
		{"10л", 10, true},
		{"2.5л", 2.5, true},
		{"1,5кг", 1.5, true},
		{"25 кг", 25, true},
		{"9", 9, true},
		{"большой", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParsePackSize(tc.size)
		assert.Equal(t, tc.ok, ok, tc.size)
		assert.Equal(t, tc.want, got, tc.size)
	}
}

func TestWithSizeOverride(t *testing.T) {
	p := model.Product{
		ID: "p", Name: "P", Consumption: 1,
		PackSize: 5, Price: 100,
		PricesBySize: map[string]float64{"18кг": 2000, "мини": 500},
	}

	shadow := WithSize(p, "18кг")
	assert.Equal(t, 2000.0, shadow.Price)
	assert.Equal(t, 18.0, shadow.PackSize)
	assert.Equal(t, "18кг", shadow.SizeText)

	// Original snapshot is never mutated.
	assert.Equal(t, 100.0, p.Price)
	assert.Equal(t, 5.0, p.PackSize)

	// A label with no numeric token keeps the static pack size.
	noToken := WithSize(p, "мини")
	assert.Equal(t, 500.0, noToken.Price)
	assert.Equal(t, 5.0, noToken.PackSize)

	// Unknown or empty size keeps everything.
	assert.Equal(t, p, WithSize(p, "нет такого"))
	assert.Equal(t, p, WithSize(p, ""))
}

func TestVariantOverrideRoundTrip(t *testing.T) {
	// Calculating with the "18кг" shadow must match a product whose static
	// pack size was hand-set to 18.
	inputs := []model.Field{{Key: "area", Default: 10, Min: 1, Max: 500, Step: 1}}
	f := model.Formula{Kind: model.FormulaArea, AreaKey: "area", ResultUnit: "мешков"}
	calc, err := engine.New(f, inputs, nil)
	require.NoError(t, err)

	variant := model.Product{
		ID: "v", Name: "V", Consumption: 5,
		Unit:         model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true},
		PricesBySize: map[string]float64{"18кг": 2000},
	}
	static := variant
	static.PricesBySize = nil
	static.PackSize = 18
	static.Price = 2000

	values := map[string]float64{"area": 10}
	shadow := WithSize(variant, "18кг")
	fromShadow := calc.Calculate(values, shadow)
	fromStatic := calc.Calculate(values, static)

	assert.Equal(t, fromStatic.Amount, fromShadow.Amount)
	assert.Equal(t, fromStatic.TotalWeight, fromShadow.TotalWeight)
	assert.Equal(t, fromStatic.EstimatedPrice, fromShadow.EstimatedPrice)
}
