package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovd/stroycalc/internal/db"
	"github.com/smirnovd/stroycalc/internal/migrations"
	"github.com/smirnovd/stroycalc/internal/model"
)

func testCategory() model.Category {
	return model.Category{
		Slug: "plaster",
		Name: "Штукатурка",
		Inputs: []model.Field{
			{Key: "area", Label: "Площадь", Default: 10, Min: 1, Max: 500, Step: 1},
		},
		Products: []model.Product{
			{ID: "p1", Name: "Волма Слой", Consumption: 8, UnitLabel: "кг/м²/см", PackSize: 30, Price: 430},
		},
		Hints:   []string{"Грунтуйте основание."},
		Formula: model.Formula{Kind: model.FormulaArea, AreaKey: "area", ResultUnit: "мешков"},
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, migrations.Up(database))
	return database
}

func TestRunIsIdempotent(t *testing.T) {
	database := openTestDB(t)

	stats, err := Run(database, []model.Category{testCategory()})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Categories)
	assert.Equal(t, 1, stats.Products)

	again, err := Run(database, []model.Category{testCategory()})
	require.NoError(t, err)
	assert.Zero(t, again.Categories)
	assert.Equal(t, 1, again.Skipped)
}

func TestUpsertProducts(t *testing.T) {
	database := openTestDB(t)

	_, err := Run(database, []model.Category{testCategory()})
	require.NoError(t, err)

	stats, err := UpsertProducts(database, "plaster", []model.Product{
		// Same name: price update from an imported list.
		{ID: "ignored", Name: "Волма Слой", Consumption: 8, UnitLabel: "кг/м²/см", PackSize: 30, Price: 455},
		// New product: appended.
		{ID: "p2", Name: "Knauf Ротбанд", Consumption: 8.5, UnitLabel: "кг/м²/см", PackSize: 30, Price: 460},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.Inserted)

	var price float64
	require.NoError(t, database.QueryRow(
		`SELECT price FROM products WHERE category_slug = 'plaster' AND name = 'Волма Слой'`).Scan(&price))
	assert.Equal(t, 455.0, price)

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(1) FROM products WHERE category_slug = 'plaster'`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestUpsertProductsUnknownCategory(t *testing.T) {
	database := openTestDB(t)

	_, err := UpsertProducts(database, "missing", []model.Product{
		{ID: "p1", Name: "X", Consumption: 1},
	})
	require.Error(t, err)
}
