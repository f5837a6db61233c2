package catalog

import (
	"strings"

	"github.com/smirnovd/stroycalc/internal/model"
)

// API payload types mirror the JSON shape of a catalog fetch (and the SQLite
// rows, which load through the same structs). Nullable numeric columns are
// pointers; Normalize applies the authoring defaults.

// Defaults for nullable input-field columns.
const (
	defaultFieldMin     = 1
	defaultFieldMax     = 500
	defaultFieldStep    = 1
	defaultFieldDefault = 10
)

type APICategory struct {
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Products    []APIProduct `json:"products"`
	Inputs      []APIInput   `json:"inputs"`
	Formula     APIFormula   `json:"formula"`
	Hints       []string     `json:"hints,omitempty"`
}

type APIProduct struct {
	ID           string             `json:"id"`
	URLID        string             `json:"url_id,omitempty"`
	Name         string             `json:"name"`
	Consumption  float64            `json:"consumption"`
	UnitLabel    string             `json:"unit_label"`
	PackSize     *float64           `json:"pack_size,omitempty"`
	Price        *float64           `json:"price,omitempty"`
	PricesBySize map[string]float64 `json:"prices_by_size,omitempty"`
	SizeText     string             `json:"size_text,omitempty"`
	Tooltip      string             `json:"tooltip,omitempty"`
	CategorySlug string             `json:"category_slug,omitempty"`
	SubSlug      string             `json:"sub_slug,omitempty"`
}

type APIInput struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Unit    string   `json:"unit,omitempty"`
	Default *float64 `json:"default,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    *float64 `json:"step,omitempty"`
	Tooltip string   `json:"tooltip,omitempty"`
}

type APIFormula struct {
	Kind               string   `json:"kind"`
	AreaKey            string   `json:"area_key,omitempty"`
	ThicknessKey       string   `json:"thickness_key,omitempty"`
	LayersKey          string   `json:"layers_key,omitempty"`
	LengthKey          string   `json:"length_key,omitempty"`
	WidthKey           string   `json:"width_key,omitempty"`
	WastePercent       *float64 `json:"waste_percent,omitempty"`
	SheetWidth         *float64 `json:"sheet_width,omitempty"`
	QuantityKey        string   `json:"quantity_key,omitempty"`
	ResultUnit         string   `json:"result_unit,omitempty"`
	ResultUnitTemplate string   `json:"result_unit_template,omitempty"`
}

// Normalize maps an API category payload 1:1 onto the authored model,
// applying defaults for absent numeric columns. It does not validate; Bind
// and Resolve do that next.
func Normalize(api APICategory) model.Category {
	c := model.Category{
		Slug:        api.Slug,
		Name:        api.Name,
		Description: api.Description,
		Icon:        api.Icon,
		Hints:       api.Hints,
		Formula: model.Formula{
			Kind:               model.FormulaKind(api.Formula.Kind),
			AreaKey:            api.Formula.AreaKey,
			ThicknessKey:       api.Formula.ThicknessKey,
			LayersKey:          api.Formula.LayersKey,
			LengthKey:          api.Formula.LengthKey,
			WidthKey:           api.Formula.WidthKey,
			WastePercent:       orZero(api.Formula.WastePercent),
			SheetWidth:         orZero(api.Formula.SheetWidth),
			QuantityKey:        api.Formula.QuantityKey,
			ResultUnit:         api.Formula.ResultUnit,
			ResultUnitTemplate: api.Formula.ResultUnitTemplate,
		},
	}

	for _, in := range api.Inputs {
		c.Inputs = append(c.Inputs, model.Field{
			Key:     in.Key,
			Label:   in.Label,
			Unit:    in.Unit,
			Default: orDefault(in.Default, defaultFieldDefault),
			Min:     orDefault(in.Min, defaultFieldMin),
			Max:     orDefault(in.Max, defaultFieldMax),
			Step:    orDefault(in.Step, defaultFieldStep),
			Tooltip: in.Tooltip,
		})
	}

	for _, ap := range api.Products {
		c.Products = append(c.Products, model.Product{
			ID:           ap.ID,
			URLID:        ap.URLID,
			Name:         ap.Name,
			Consumption:  ap.Consumption,
			Unit:         ParseUnitLabel(ap.UnitLabel),
			UnitLabel:    ap.UnitLabel,
			PackSize:     orZero(ap.PackSize),
			Price:        orZero(ap.Price),
			PricesBySize: ap.PricesBySize,
			SizeText:     ap.SizeText,
			Tooltip:      ap.Tooltip,
			CategorySlug: ap.CategorySlug,
			SubSlug:      ap.SubSlug,
		})
	}

	return c
}

// NormalizeAll maps and binds a full payload, dropping invalid categories.
func NormalizeAll(payload []APICategory) []Material {
	categories := make([]model.Category, 0, len(payload))
	for _, api := range payload {
		categories = append(categories, Normalize(api))
	}
	return Resolve(categories)
}

// ParseUnitLabel derives the structured unit descriptor from a free-text TDS
// unit once, at catalog-authoring time. The formula evaluators branch on the
// descriptor, never on the label.
func ParseUnitLabel(label string) model.ConsumptionUnit {
	s := strings.ToLower(strings.TrimSpace(label))
	u := model.ConsumptionUnit{Quantity: model.QuantityKg}

	switch {
	case strings.HasPrefix(s, "л"):
		u.Quantity = model.QuantityLiter
	case strings.HasPrefix(s, "м²") || strings.HasPrefix(s, "м2"):
		u.Quantity = model.QuantityM2
	case strings.HasPrefix(s, "шт"):
		u.Quantity = model.QuantityPcs
	}

	if strings.Contains(s, "/м²") || strings.Contains(s, "/м2") {
		u.PerArea = true
	}
	switch {
	case strings.HasSuffix(s, "/см"):
		u.PerThickness = model.PerCm
	case strings.HasSuffix(s, "/мм"):
		u.PerThickness = model.PerMm
	}
	if strings.HasSuffix(s, "/шт") || strings.HasSuffix(s, "/блок") ||
		strings.HasSuffix(s, "/лист") || strings.HasSuffix(s, "/уп") {
		u.PerPiece = true
	}

	return u
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
