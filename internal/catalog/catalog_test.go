package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovd/stroycalc/internal/model"
)

func TestStaticResolvesCleanly(t *testing.T) {
	static := Static()
	materials := Resolve(static)
	require.Len(t, materials, len(static), "no static category may be dropped")

	for _, m := range materials {
		assert.NotEmpty(t, m.Products, m.Slug)
		assert.NotEmpty(t, m.Inputs, m.Slug)
		res := m.Calculate(m.DefaultValues(), m.Products[0])
		assert.NotEmpty(t, res.Unit, m.Slug)
		assert.Greater(t, res.Amount, 0.0, m.Slug)
	}
}

func TestStaticCoversEveryFormulaKind(t *testing.T) {
	kinds := map[model.FormulaKind]bool{}
	for _, c := range Static() {
		kinds[c.Formula.Kind] = true
	}
	assert.True(t, kinds[model.FormulaArea])
	assert.True(t, kinds[model.FormulaSheets])
	assert.True(t, kinds[model.FormulaPieces])
}

func validCategory() model.Category {
	return model.Category{
		Slug: "test",
		Name: "Test",
		Inputs: []model.Field{
			{Key: "area", Default: 10, Min: 1, Max: 500, Step: 1},
		},
		Products: []model.Product{
			{ID: "p1", Name: "P1", Consumption: 2,
				Unit: model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true}},
		},
		Formula: model.Formula{Kind: model.FormulaArea, AreaKey: "area"},
	}
}

func TestResolveDropsInvalid(t *testing.T) {
	noProducts := validCategory()
	noProducts.Products = nil

	noInputs := validCategory()
	noInputs.Inputs = nil

	unknownKind := validCategory()
	unknownKind.Formula.Kind = "volume"

	badBounds := validCategory()
	badBounds.Inputs[0].Step = 0

	zeroConsumption := validCategory()
	zeroConsumption.Products[0].Consumption = 0

	missingKey := validCategory()
	missingKey.Formula.AreaKey = "surface"

	// A thickness multiplier on a product whose rate does not vary with
	// thickness is an authoring error, not a calculation-time surprise.
	badThickness := validCategory()
	badThickness.Inputs = append(badThickness.Inputs,
		model.Field{Key: "thickness", Default: 1, Min: 0.5, Max: 5, Step: 0.5})
	badThickness.Formula.ThicknessKey = "thickness"

	materials := Resolve([]model.Category{
		noProducts, noInputs, unknownKind, badBounds,
		zeroConsumption, missingKey, badThickness,
		validCategory(), // the only survivor
	})
	require.Len(t, materials, 1)
	assert.Equal(t, "test", materials[0].Slug)
}

func TestNormalizeDefaults(t *testing.T) {
	price := 430.0
	api := APICategory{
		Slug: "plaster",
		Name: "Штукатурка",
		Inputs: []APIInput{
			{Key: "area"}, // all numeric columns NULL
		},
		Products: []APIProduct{
			{ID: "p1", Name: "Волма Слой", Consumption: 8, UnitLabel: "кг/м²/см", Price: &price},
		},
		Formula: APIFormula{Kind: "area", AreaKey: "area", ResultUnit: "мешков"},
	}

	c := Normalize(api)
	require.Len(t, c.Inputs, 1)
	assert.Equal(t, 10.0, c.Inputs[0].Default)
	assert.Equal(t, 1.0, c.Inputs[0].Min)
	assert.Equal(t, 500.0, c.Inputs[0].Max)
	assert.Equal(t, 1.0, c.Inputs[0].Step)

	require.Len(t, c.Products, 1)
	assert.Equal(t, 0.0, c.Products[0].PackSize, "NULL pack size means sold loose")
	assert.Equal(t, 430.0, c.Products[0].Price)
	assert.Equal(t, model.PerCm, c.Products[0].Unit.PerThickness)
}

func TestNormalizeAllMatchesStaticSemantics(t *testing.T) {
	// The same plaster category authored as an API payload must calculate
	// identically to its static twin.
	pack := 30.0
	price := 430.0
	def := 10.0
	one := 1.0
	half := 0.5
	five := 5.0
	fiveHundred := 500.0

	payload := []APICategory{{
		Slug: "shtukaturka",
		Name: "Штукатурка",
		Inputs: []APIInput{
			{Key: "area", Default: &def, Min: &one, Max: &fiveHundred, Step: &one},
			{Key: "thickness", Default: &one, Min: &half, Max: &five, Step: &half},
		},
		Products: []APIProduct{
			{ID: "volma-sloy", Name: "Волма Слой", Consumption: 8,
				UnitLabel: "кг/м²/см", PackSize: &pack, Price: &price},
		},
		Formula: APIFormula{Kind: "area", AreaKey: "area", ThicknessKey: "thickness", ResultUnit: "мешков"},
		Hints: []string{
			"Добавьте 5–10% к площади при работе по маякам.",
			"Не замешивайте больше, чем выработаете за 40 минут.",
		},
	}}

	materials := NormalizeAll(payload)
	require.Len(t, materials, 1)

	static := Resolve(Static())
	staticPlaster := Find(static, "shtukaturka")
	require.NotNil(t, staticPlaster)

	values := map[string]float64{"area": 10, "thickness": 1}
	fromAPI := materials[0].Calculate(values, materials[0].Products[0])
	fromStatic := staticPlaster.Calculate(values, staticPlaster.Products[0])
	assert.Equal(t, fromStatic, fromAPI)
}

func TestCalculateProduct(t *testing.T) {
	materials := Resolve(Static())
	paint := Find(materials, "kraska")
	require.NotNil(t, paint)

	values := map[string]float64{"area": 30, "layers": 2}

	res, shadow, err := paint.CalculateProduct(values, "tikkurila-euro7", "9л")
	require.NoError(t, err)
	assert.Equal(t, 6900.0, shadow.Price)
	assert.Equal(t, 9.0, shadow.PackSize)
	assert.Equal(t, 1.0, res.Amount, "7.2 l fits one 9 l canister")
	assert.Equal(t, 6900.0, res.EstimatedPrice)

	_, _, err = paint.CalculateProduct(values, "no-such-product", "")
	assert.Error(t, err)
}
