// Package importer reads supplier price lists from CSV and Excel files into
// catalog product payloads. It supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition in Russian
// and English.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/smirnovd/stroycalc/internal/catalog"
)

// Result holds the outcome of an import operation.
type Result struct {
	Products []catalog.APIProduct
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name        int
	Consumption int
	Unit        int
	Pack        int
	Price       int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":        {"name", "product", "наименование", "название", "товар", "материал"},
	"consumption": {"consumption", "rate", "расход", "норма расхода", "норма"},
	"unit":        {"unit", "ед", "ед.", "ед. изм.", "единица", "unit label"},
	"pack":        {"pack", "package", "bag", "упаковка", "фасовка", "мешок", "тара"},
	"price":       {"price", "cost", "цена", "стоимость", "цена, руб", "цена руб"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV
// delimiter. It tries comma, semicolon, tab, and pipe. The delimiter that
// produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It matches
// case-insensitively against known aliases for each column role. Returns the
// mapping and true if a header was detected, or a default positional mapping
// and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:        -1,
		Consumption: -1,
		Unit:        -1,
		Pack:        -1,
		Price:       -1,
	}

	assign := func(target *int, i int) {
		if *target == -1 {
			*target = i
		}
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						assign(&mapping.Name, i)
					case "consumption":
						assign(&mapping.Consumption, i)
					case "unit":
						assign(&mapping.Unit, i)
					case "pack":
						assign(&mapping.Pack, i)
					case "price":
						assign(&mapping.Price, i)
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Consumption, Unit, Pack, Price
		return ColumnMapping{Name: 0, Consumption: 1, Unit: 2, Pack: 3, Price: 4}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber accepts both decimal separators used in Russian price lists.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// parseRow extracts a product payload from a row using the given column
// mapping. Returns the product, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (catalog.APIProduct, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		return catalog.APIProduct{}, fmt.Sprintf("%s: Missing product name", rowLabel), ""
	}

	consumptionStr := getCell(row, mapping.Consumption)
	if consumptionStr == "" {
		return catalog.APIProduct{}, fmt.Sprintf("%s: Missing consumption value", rowLabel), ""
	}
	consumption, err := parseNumber(consumptionStr)
	if err != nil {
		return catalog.APIProduct{}, fmt.Sprintf("%s: Invalid consumption '%s'", rowLabel, consumptionStr), ""
	}
	if consumption <= 0 {
		return catalog.APIProduct{}, fmt.Sprintf("%s: Consumption must be positive", rowLabel), ""
	}

	product := catalog.APIProduct{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Consumption: consumption,
		UnitLabel:   getCell(row, mapping.Unit),
	}

	var warning string
	if packStr := getCell(row, mapping.Pack); packStr != "" {
		pack, err := parseNumber(packStr)
		if err != nil || pack <= 0 {
			warning = fmt.Sprintf("%s: Invalid pack size '%s', importing without packaging", rowLabel, packStr)
		} else {
			product.PackSize = &pack
		}
	}
	if priceStr := getCell(row, mapping.Price); priceStr != "" {
		price, err := parseNumber(priceStr)
		if err != nil || price <= 0 {
			warning = fmt.Sprintf("%s: Invalid price '%s', importing as price on request", rowLabel, priceStr)
		} else {
			product.Price = &price
		}
	}

	return product, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports products from a CSV price list. It automatically detects
// the delimiter and maps columns by header names.
func ImportCSV(path string) Result {
	result := Result{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports products from a CSV reader with a known
// delimiter. Useful for testing and for upload handlers.
func ImportCSVFromReader(reader io.Reader, delimiter rune) Result {
	result := Result{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports products from an Excel (.xlsx) price list. Reads the
// first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) Result {
	result := Result{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) Result {
	result := Result{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Consumption == -1 {
			missing = append(missing, "Consumption")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// No recognized header: if the consumption cell of the first row is
		// not numeric it is probably an unrecognized header, skip it.
		if _, err := parseNumber(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Products = append(result.Products, product)
	}

	return result
}
