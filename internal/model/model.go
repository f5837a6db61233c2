package model

import (
	"sort"

	"github.com/google/uuid"
)

// Quantity is the physical quantity a consumption rate or result is measured in.
type Quantity string

const (
	QuantityKg    Quantity = "kg"  // mass
	QuantityLiter Quantity = "l"   // volume
	QuantityM2    Quantity = "m2"  // covered area
	QuantityPcs   Quantity = "pcs" // discrete pieces
)

// ThicknessUnit is the thickness dimension a per-thickness consumption rate
// refers to. Empty means the rate does not vary with thickness.
type ThicknessUnit string

const (
	PerCm ThicknessUnit = "cm"
	PerMm ThicknessUnit = "mm"
)

// ConsumptionUnit describes the physical meaning of a product's consumption
// rate as structured data. The free-text label from the technical data sheet
// (e.g. "кг/м²/см") is kept separately for display only; formulas branch on
// this struct, never on the label.
type ConsumptionUnit struct {
	Quantity     Quantity      `json:"quantity"`
	PerArea      bool          `json:"per_area"`
	PerThickness ThicknessUnit `json:"per_thickness,omitempty"`
	PerPiece     bool          `json:"per_piece,omitempty"`
}

// VariesWithThickness reports whether the rate scales with a thickness input.
func (u ConsumptionUnit) VariesWithThickness() bool {
	return u.PerThickness != ""
}

// Field is one user-adjustable numeric parameter of a category.
type Field struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Tooltip string  `json:"tooltip,omitempty"`
}

// Valid reports whether the field bounds are coherent.
func (f Field) Valid() bool {
	return f.Key != "" && f.Step > 0 && f.Min <= f.Default && f.Default <= f.Max
}

// Product is one concrete, purchasable material. It is a read-only snapshot:
// the engine never mutates it, size-variant selection produces a shadow copy.
type Product struct {
	ID           string             `json:"id"`
	URLID        string             `json:"url_id,omitempty"`
	Name         string             `json:"name"`
	Consumption  float64            `json:"consumption"`
	Unit         ConsumptionUnit    `json:"unit"`
	UnitLabel    string             `json:"unit_label"`         // TDS wording, display only
	PackSize     float64            `json:"pack_size"`          // kg per bag, m² per sheet/pack; 0 = sold loose
	Price        float64            `json:"price"`              // per package/unit; 0 = price on request
	PricesBySize map[string]float64 `json:"prices_by_size,omitempty"`
	SizeText     string             `json:"size_text,omitempty"`
	Tooltip      string             `json:"tooltip,omitempty"`
	CategorySlug string             `json:"category_slug,omitempty"`
	SubSlug      string             `json:"sub_slug,omitempty"`
}

// NewProduct creates a product with a generated short ID.
func NewProduct(name string, consumption float64, unit ConsumptionUnit) Product {
	return Product{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Consumption: consumption,
		Unit:        unit,
	}
}

// SizeKeys returns the variant labels in stable sorted order, or nil when the
// product has no size variants.
func (p Product) SizeKeys() []string {
	if len(p.PricesBySize) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p.PricesBySize))
	for k := range p.PricesBySize {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Category is an authored calculator category: the products it offers, the
// inputs the user adjusts, and the formula that ties them together.
type Category struct {
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Products    []Product `json:"products"`
	Inputs      []Field   `json:"inputs"`
	Hints       []string  `json:"hints,omitempty"` // static recommendation lines
	Formula     Formula   `json:"formula"`
}

// FindProduct returns a pointer to the product with the given ID, or nil.
func (c *Category) FindProduct(id string) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindInput returns a pointer to the field with the given key, or nil.
func (c *Category) FindInput(key string) *Field {
	for i := range c.Inputs {
		if c.Inputs[i].Key == key {
			return &c.Inputs[i]
		}
	}
	return nil
}

// HasInput reports whether a field with the given key exists.
func (c *Category) HasInput(key string) bool {
	return c.FindInput(key) != nil
}

// DefaultValues returns the default value of every input keyed by field key.
func (c *Category) DefaultValues() map[string]float64 {
	values := make(map[string]float64, len(c.Inputs))
	for _, f := range c.Inputs {
		values[f.Key] = f.Default
	}
	return values
}

// Result is the engine's sole output, recomputed on every input change.
// Amount is already package-rounded where the formula mandates whole packages
// and continuous otherwise; Amount and Unit are jointly ready for a cart line
// without further conversion.
type Result struct {
	Amount          float64  `json:"amount"`
	Unit            string   `json:"unit"`
	TotalWeight     float64  `json:"total_weight,omitempty"` // 0 when not applicable
	Details         string   `json:"details"`
	EstimatedPrice  float64  `json:"estimated_price,omitempty"` // 0 = price on request
	Recommendations []string `json:"recommendations,omitempty"`
}
