package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 18.0
	marginRight  = 18.0
	marginTop    = 18.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight
	qrSize       = 28.0
)

// qrPayload is the data encoded into the estimate QR code.
type qrPayload struct {
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	URL     string  `json:"url,omitempty"`
}

// ExportPDF writes an estimate document to the given path.
func ExportPDF(path string, est Estimate) error {
	pdf, err := buildPDF(est)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WritePDF renders an estimate document to the given writer. Used by the
// HTTP download handler.
func WritePDF(w io.Writer, est Estimate) error {
	pdf, err := buildPDF(est)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// buildPDF lays out a single-page estimate. Cyrillic text goes through a
// cp1251 translator because the core fonts are single-byte.
func buildPDF(est Estimate) (*fpdf.Fpdf, error) {
	if est.ProductName == "" {
		return nil, fmt.Errorf("estimate has no product")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 9, tr("Расчёт расхода материала"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 5, tr(est.CategoryName), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(marginLeft, pdf.GetY()+2, pageWidth-marginRight, pdf.GetY()+2)
	pdf.SetY(pdf.GetY() + 7)

	// Product and QR code side by side
	startY := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth-qrSize-5, 7, tr(est.ProductName), "", 1, "L", false, 0, "")

	if err := drawQR(pdf, est, pageWidth-marginRight-qrSize, startY); err != nil {
		return nil, err
	}

	// Input parameters table
	pdf.SetY(startY + 10)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 6, tr("Параметры"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, in := range est.Inputs {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(marginLeft)
		pdf.CellFormat(90, 6, tr(in.Label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 6, tr(in.Value), "1", 1, "L", true, 0, "")
	}

	// Result block
	pdf.SetY(pdf.GetY() + 6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetX(marginLeft)
	resultLine := fmt.Sprintf("Итого: %s %s", formatAmount(est.Amount), est.UnitLabel)
	pdf.CellFormat(contentWidth, 8, tr(resultLine), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if est.Details != "" {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 5, tr(est.Details), "", 1, "L", false, 0, "")
	}
	if est.TotalWeight > 0 {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 5, tr(fmt.Sprintf("Общий вес: %s кг", formatAmount(est.TotalWeight))), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	if est.Price > 0 {
		pdf.CellFormat(contentWidth, 7, tr(fmt.Sprintf("Ориентировочная стоимость: %s руб.", formatMoney(est.Price))), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(contentWidth, 7, tr("Стоимость: по запросу"), "", 1, "L", false, 0, "")
	}

	// Recommendations
	if len(est.Recommendations) > 0 {
		pdf.SetY(pdf.GetY() + 4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 6, tr("Рекомендации"), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, rec := range est.Recommendations {
			pdf.SetX(marginLeft + 3)
			pdf.MultiCell(contentWidth-3, 4.5, tr("– "+rec), "", "L", false)
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, 297-marginBottom)
	footer := "Расчёт носит справочный характер"
	if !est.GeneratedAt.IsZero() {
		footer += ", " + est.GeneratedAt.Format("02.01.2006")
	}
	pdf.CellFormat(contentWidth, 4, tr(footer), "", 0, "C", false, 0, "")

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

// drawQR renders the QR code block linking back to the product page.
func drawQR(pdf *fpdf.Fpdf, est Estimate, x, y float64) error {
	payload := qrPayload{
		Product: est.ProductName,
		Amount:  est.Amount,
		Unit:    est.UnitLabel,
		URL:     est.ProductURL,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal QR payload: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf.RegisterImageOptionsReader("estimate_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions("estimate_qr", x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
