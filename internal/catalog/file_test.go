package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovd/stroycalc/internal/model"
)

func TestSaveLoadCustomRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")

	payload := []APICategory{{
		Slug: "custom",
		Name: "Своя категория",
		Inputs: []APIInput{
			{Key: "area", Label: "Площадь"},
		},
		Products: []APIProduct{
			{ID: "c1", Name: "Материал", Consumption: 2, UnitLabel: "кг/м²"},
		},
		Formula: APIFormula{Kind: "area", AreaKey: "area", ResultUnit: "мешков"},
	}}

	require.NoError(t, SaveCustom(path, payload))

	loaded, err := LoadCustom(path)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestLoadCustomMissingFile(t *testing.T) {
	loaded, err := LoadCustom(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMergeOverlaysBySlug(t *testing.T) {
	base := Resolve(Static())
	baseLen := len(base)

	replacement := validCategory()
	replacement.Slug = "shtukaturka"
	replacement.Name = "Штукатурка (своя)"
	extra := validCategory()
	extra.Slug = "extra"

	custom := Resolve([]model.Category{replacement, extra})
	require.Len(t, custom, 2)

	merged := Merge(base, custom)
	assert.Len(t, merged, baseLen+1)
	assert.Equal(t, "Штукатурка (своя)", Find(merged, "shtukaturka").Name)
	assert.NotNil(t, Find(merged, "extra"))

	// Merge must not mutate the base slice's categories.
	assert.Equal(t, "Штукатурка", Find(base, "shtukaturka").Name)
}
