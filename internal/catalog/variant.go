package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smirnovd/stroycalc/internal/model"
)

// sizeToken matches the leading numeric token of a size-variant label:
// one or more digits, optional decimal point, optional unit suffix.
var sizeToken = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*(кг|л|м²|мм)?`)

// WithSize returns a shadow copy of the product with price and pack size
// overridden by the selected size variant. The override happens before any
// formula runs; formulas are unaware variants exist. An empty or unknown
// size, or a label with no parsable numeric token, keeps the static values.
func WithSize(p model.Product, size string) model.Product {
	if size == "" || len(p.PricesBySize) == 0 {
		return p
	}
	price, ok := p.PricesBySize[size]
	if !ok {
		return p
	}

	shadow := p
	shadow.Price = price
	shadow.SizeText = size
	if pack, ok := ParsePackSize(size); ok {
		shadow.PackSize = pack
	}
	return shadow
}

// ParsePackSize extracts the numeric pack size from a size-variant label
// ("18кг" → 18, "2.5л" → 2.5). The second return is false when the label
// carries no leading numeric token.
func ParsePackSize(size string) (float64, bool) {
	m := sizeToken.FindStringSubmatch(strings.TrimSpace(size))
	if m == nil || m[1] == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
