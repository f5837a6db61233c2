// stroycalc-import — supplier price list importer
//
// Reads a CSV or XLSX price list and merges the products into an existing
// catalog category in the SQLite database.
//
// Usage:
//   stroycalc-import -file price.csv -category shtukaturka [-db ./stroycalc.db] [-dry-run]
//
// Column mapping is detected from the header row (Russian and English
// headers supported); without a header the column order is assumed to be
// name, consumption, unit, pack, price.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/smirnovd/stroycalc/internal/catalog"
	"github.com/smirnovd/stroycalc/internal/db"
	"github.com/smirnovd/stroycalc/internal/importer"
	"github.com/smirnovd/stroycalc/internal/migrations"
	"github.com/smirnovd/stroycalc/internal/model"
	"github.com/smirnovd/stroycalc/internal/seed"
)

func main() {
	file := flag.String("file", "", "price list file (.csv or .xlsx)")
	category := flag.String("category", "", "target category slug")
	dbPath := flag.String("db", "./stroycalc.db", "SQLite database path")
	dryRun := flag.Bool("dry-run", false, "parse and report without writing")
	flag.Parse()

	if *file == "" || *category == "" {
		flag.Usage()
		os.Exit(2)
	}

	var result importer.Result
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".csv":
		result = importer.ImportCSV(*file)
	case ".xlsx":
		result = importer.ImportExcel(*file)
	default:
		log.Fatalf("unsupported file type %q, expected .csv or .xlsx", filepath.Ext(*file))
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	if len(result.Products) == 0 {
		log.Fatal("no products imported")
	}
	fmt.Printf("parsed %d products from %s\n", len(result.Products), *file)

	products := make([]model.Product, 0, len(result.Products))
	for _, ap := range result.Products {
		c := catalog.Normalize(catalog.APICategory{Products: []catalog.APIProduct{ap}})
		products = append(products, c.Products[0])
	}

	if *dryRun {
		for _, p := range products {
			fmt.Printf("  %-40s %8v %-12s pack=%v price=%v\n",
				p.Name, p.Consumption, p.UnitLabel, p.PackSize, p.Price)
		}
		return
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	stats, err := seed.UpsertProducts(database, *category, products)
	if err != nil {
		log.Fatalf("failed to import into %s: %v", *category, err)
	}
	fmt.Printf("category %s: %d inserted, %d updated\n", *category, stats.Inserted, stats.Updated)
}
