// Package export renders material estimates into downloadable documents.
// It produces PDF estimates with a QR code linking back to the product page
// and XLSX workbooks for further editing in spreadsheet software.
package export

import (
	"strconv"
	"strings"
	"time"
)

// InputLine is a single human-readable input parameter on an estimate.
type InputLine struct {
	Label string
	Value string
}

// Estimate holds everything needed to render a calculation result as a
// document. It is assembled by the server from a catalog category, the
// chosen product, and the computed result.
type Estimate struct {
	CategoryName    string
	ProductName     string
	ProductURL      string // encoded into the QR code when non-empty
	Inputs          []InputLine
	Amount          float64
	UnitLabel       string
	TotalWeight     float64 // kg, zero when not applicable
	Price           float64 // rubles, zero when price is on request
	Details         string
	Recommendations []string
	GeneratedAt     time.Time
}

// formatAmount renders a quantity without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatMoney renders a ruble amount with thousands separators.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
