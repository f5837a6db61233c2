package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const estimateSheet = "Смета"

// ExportXLSX writes an estimate workbook to the given path.
func ExportXLSX(path string, est Estimate) error {
	f, err := buildXLSX(est)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteXLSX renders an estimate workbook to the given writer.
func WriteXLSX(w io.Writer, est Estimate) error {
	f, err := buildXLSX(est)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func buildXLSX(est Estimate) (*excelize.File, error) {
	if est.ProductName == "" {
		return nil, fmt.Errorf("estimate has no product")
	}

	f := excelize.NewFile()
	idx, err := f.NewSheet(estimateSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	set := func(cell string, value interface{}) {
		if err == nil {
			err = f.SetCellValue(estimateSheet, cell, value)
		}
	}

	set("A1", "Расчёт расхода материала")
	set("A2", est.CategoryName)
	set("A4", "Товар")
	set("B4", est.ProductName)

	row := 6
	set(cell("A", row), "Параметры")
	row++
	for _, in := range est.Inputs {
		set(cell("A", row), in.Label)
		set(cell("B", row), in.Value)
		row++
	}

	row++
	resultRow := row
	set(cell("A", row), "Итого")
	set(cell("B", row), fmt.Sprintf("%s %s", formatAmount(est.Amount), est.UnitLabel))
	row++
	if est.Details != "" {
		set(cell("A", row), est.Details)
		row++
	}
	if est.TotalWeight > 0 {
		set(cell("A", row), "Общий вес, кг")
		set(cell("B", row), est.TotalWeight)
		row++
	}
	if est.Price > 0 {
		set(cell("A", row), "Ориентировочная стоимость, руб.")
		set(cell("B", row), est.Price)
	} else {
		set(cell("A", row), "Стоимость")
		set(cell("B", row), "по запросу")
	}
	row += 2

	if len(est.Recommendations) > 0 {
		set(cell("A", row), "Рекомендации")
		row++
		for _, rec := range est.Recommendations {
			set(cell("A", row), rec)
			row++
		}
	}
	if err != nil {
		return nil, err
	}

	if err := f.SetCellStyle(estimateSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(estimateSheet, cell("A", resultRow), cell("B", resultRow), boldStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(estimateSheet, "A", "A", 42); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(estimateSheet, "B", "B", 28); err != nil {
		return nil, err
	}

	return f, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
