package model

import "fmt"

// FormulaKind selects one of the closed set of consumption formulas.
type FormulaKind string

const (
	// FormulaArea is the general consumption-proportional formula:
	// raw = area × consumption × (thickness or layers multiplier).
	FormulaArea FormulaKind = "area"
	// FormulaSheets tiles panels/sheets over an area with a waste allowance
	// and rounds up to whole sheets.
	FormulaSheets FormulaKind = "sheets"
	// FormulaPieces multiplies a piece count by per-piece consumption.
	FormulaPieces FormulaKind = "pieces"
)

// Valid reports whether k is a known formula kind.
func (k FormulaKind) Valid() bool {
	switch k {
	case FormulaArea, FormulaSheets, FormulaPieces:
		return true
	}
	return false
}

// Formula declares which formula a category uses and its static parameters.
// Key fields name inputs of the owning category; which keys are required
// depends on Kind (see Validate).
type Formula struct {
	Kind FormulaKind `json:"kind"`

	// area
	AreaKey      string `json:"area_key,omitempty"`
	ThicknessKey string `json:"thickness_key,omitempty"` // mutually exclusive with LayersKey
	LayersKey    string `json:"layers_key,omitempty"`

	// sheets: either AreaKey, or LengthKey × WidthKey
	LengthKey    string  `json:"length_key,omitempty"`
	WidthKey     string  `json:"width_key,omitempty"`
	WastePercent float64 `json:"waste_percent,omitempty"`
	SheetWidth   float64 `json:"sheet_width,omitempty"` // fixed working width, display only

	// pieces
	QuantityKey string `json:"quantity_key,omitempty"`

	ResultUnit         string `json:"result_unit"`
	ResultUnitTemplate string `json:"result_unit_template,omitempty"` // overrides ResultUnit, %v = SheetWidth
}

// Validate checks the formula against the inputs it will read. It catches
// authoring mistakes at registration time so they can never surface as a
// calculation crash.
func (f Formula) Validate(has func(key string) bool) error {
	if !f.Kind.Valid() {
		return fmt.Errorf("unknown formula kind %q", f.Kind)
	}

	require := func(role, key string) error {
		if key == "" {
			return fmt.Errorf("%s formula: %s key is not set", f.Kind, role)
		}
		if !has(key) {
			return fmt.Errorf("%s formula: %s key %q is not an input of the category", f.Kind, role, key)
		}
		return nil
	}

	switch f.Kind {
	case FormulaArea:
		if err := require("area", f.AreaKey); err != nil {
			return err
		}
		if f.ThicknessKey != "" && f.LayersKey != "" {
			return fmt.Errorf("area formula: thickness and layers keys are mutually exclusive")
		}
		if f.ThicknessKey != "" {
			if err := require("thickness", f.ThicknessKey); err != nil {
				return err
			}
		}
		if f.LayersKey != "" {
			if err := require("layers", f.LayersKey); err != nil {
				return err
			}
		}
	case FormulaSheets:
		if f.AreaKey != "" {
			if err := require("area", f.AreaKey); err != nil {
				return err
			}
		} else {
			if err := require("length", f.LengthKey); err != nil {
				return err
			}
			if err := require("width", f.WidthKey); err != nil {
				return err
			}
		}
		if f.WastePercent < 0 {
			return fmt.Errorf("sheets formula: negative waste percent %v", f.WastePercent)
		}
	case FormulaPieces:
		if err := require("quantity", f.QuantityKey); err != nil {
			return err
		}
	}
	return nil
}

// UnitLabel returns the display unit for the formula's result, resolving the
// template substitution for the fixed sheet working width.
func (f Formula) UnitLabel() string {
	if f.ResultUnitTemplate != "" {
		return fmt.Sprintf(f.ResultUnitTemplate, f.SheetWidth)
	}
	return f.ResultUnit
}
