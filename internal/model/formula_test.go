package model

import "testing"

func hasKeys(keys ...string) func(string) bool {
	return func(key string) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func TestFormulaKindValid(t *testing.T) {
	for _, k := range []FormulaKind{FormulaArea, FormulaSheets, FormulaPieces} {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	if FormulaKind("volume").Valid() {
		t.Error("unknown kind should be invalid")
	}
}

func TestFormulaValidate(t *testing.T) {
	cases := []struct {
		name    string
		formula Formula
		has     func(string) bool
		wantErr bool
	}{
		{
			"area ok",
			Formula{Kind: FormulaArea, AreaKey: "area", ThicknessKey: "thickness"},
			hasKeys("area", "thickness"),
			false,
		},
		{
			"area missing key",
			Formula{Kind: FormulaArea, AreaKey: "surface"},
			hasKeys("area"),
			true,
		},
		{
			"area thickness and layers exclusive",
			Formula{Kind: FormulaArea, AreaKey: "area", ThicknessKey: "thickness", LayersKey: "layers"},
			hasKeys("area", "thickness", "layers"),
			true,
		},
		{
			"sheets via area",
			Formula{Kind: FormulaSheets, AreaKey: "area", WastePercent: 10},
			hasKeys("area"),
			false,
		},
		{
			"sheets via length and width",
			Formula{Kind: FormulaSheets, LengthKey: "length", WidthKey: "width"},
			hasKeys("length", "width"),
			false,
		},
		{
			"sheets without any area source",
			Formula{Kind: FormulaSheets},
			hasKeys("area"),
			true,
		},
		{
			"sheets negative waste",
			Formula{Kind: FormulaSheets, AreaKey: "area", WastePercent: -5},
			hasKeys("area"),
			true,
		},
		{
			"pieces ok",
			Formula{Kind: FormulaPieces, QuantityKey: "blocks"},
			hasKeys("blocks"),
			false,
		},
		{
			"unknown kind",
			Formula{Kind: "volume"},
			hasKeys("area"),
			true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.formula.Validate(tc.has)
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFormulaUnitLabel(t *testing.T) {
	plain := Formula{ResultUnit: "мешков"}
	if got := plain.UnitLabel(); got != "мешков" {
		t.Errorf("UnitLabel() = %q", got)
	}

	templated := Formula{
		ResultUnit:         "листов",
		ResultUnitTemplate: "листов (рабочая ширина %vм)",
		SheetWidth:         1.15,
	}
	if got := templated.UnitLabel(); got != "листов (рабочая ширина 1.15м)" {
		t.Errorf("UnitLabel() = %q", got)
	}
}
