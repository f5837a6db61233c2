package catalog

import "github.com/smirnovd/stroycalc/internal/model"

// Static returns the embedded default catalog. Rates come from manufacturer
// technical data sheets; prices are list prices used for the estimate only.
func Static() []model.Category {
	return []model.Category{
		{
			Slug:        "shtukaturka",
			Name:        "Штукатурка",
			Description: "Расход гипсовой штукатурки по площади и толщине слоя",
			Icon:        "trowel",
			Inputs: []model.Field{
				{Key: "area", Label: "Площадь", Unit: "м²", Default: 10, Min: 1, Max: 500, Step: 1},
				{Key: "thickness", Label: "Толщина слоя", Unit: "см", Default: 1, Min: 0.5, Max: 5, Step: 0.5,
					Tooltip: "Средняя толщина по маякам"},
			},
			Products: []model.Product{
				{
					ID: "volma-sloy", URLID: "volma-sloy-30kg", Name: "Волма Слой",
					Consumption: 8, UnitLabel: "кг/м²/см",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true, PerThickness: model.PerCm},
					PackSize: 30, Price: 430, CategorySlug: "dry-mixes", SubSlug: "plaster",
				},
				{
					ID: "knauf-rotband", URLID: "knauf-rotband-30kg", Name: "Knauf Ротбанд",
					Consumption: 8.5, UnitLabel: "кг/м²/см",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true, PerThickness: model.PerCm},
					PackSize: 30, Price: 460, CategorySlug: "dry-mixes", SubSlug: "plaster",
				},
				{
					ID: "volma-gips-aktiv", URLID: "volma-gips-aktiv-30kg", Name: "Волма Гипс-Актив",
					Consumption: 9, UnitLabel: "кг/м²/см",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true, PerThickness: model.PerCm},
					PackSize: 30, Price: 395, Tooltip: "Для машинного нанесения",
					CategorySlug: "dry-mixes", SubSlug: "plaster",
				},
			},
			Hints: []string{
				"Добавьте 5–10% к площади при работе по маякам.",
				"Не замешивайте больше, чем выработаете за 40 минут.",
			},
			Formula: model.Formula{
				Kind: model.FormulaArea, AreaKey: "area", ThicknessKey: "thickness",
				ResultUnit: "мешков",
			},
		},
		{
			Slug:        "shpaklevka",
			Name:        "Шпатлёвка",
			Description: "Расход финишной шпатлёвки по площади и числу слоёв",
			Icon:        "spatula",
			Inputs: []model.Field{
				{Key: "area", Label: "Площадь", Unit: "м²", Default: 20, Min: 1, Max: 500, Step: 1},
				{Key: "layers", Label: "Число слоёв", Unit: "сл.", Default: 2, Min: 1, Max: 5, Step: 1},
			},
			Products: []model.Product{
				{
					ID: "volma-finish", URLID: "volma-finish-20kg", Name: "Волма Финиш",
					Consumption: 1.2, UnitLabel: "кг/м²",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true},
					PackSize: 20, Price: 520, CategorySlug: "dry-mixes", SubSlug: "putty",
				},
				{
					ID: "danogips-superfinish", URLID: "danogips-superfinish-17l", Name: "Danogips SuperFinish",
					Consumption: 1.0, UnitLabel: "кг/м²",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerArea: true},
					PackSize: 17, Price: 1450, SizeText: "ведро 17 л (28 кг)",
					CategorySlug: "dry-mixes", SubSlug: "putty",
				},
			},
			Hints: []string{"Под покраску наносите не менее двух слоёв."},
			Formula: model.Formula{
				Kind: model.FormulaArea, AreaKey: "area", LayersKey: "layers",
				ResultUnit: "упаковок",
			},
		},
		{
			Slug:        "kraska",
			Name:        "Краска и грунтовка",
			Description: "Расход лакокрасочных материалов, продаются литрами",
			Icon:        "roller",
			Inputs: []model.Field{
				{Key: "area", Label: "Площадь", Unit: "м²", Default: 30, Min: 1, Max: 500, Step: 1},
				{Key: "layers", Label: "Число слоёв", Unit: "сл.", Default: 2, Min: 1, Max: 4, Step: 1},
			},
			Products: []model.Product{
				{
					ID: "tikkurila-euro7", URLID: "tikkurila-euro-power-7", Name: "Tikkurila Euro Power 7",
					Consumption: 0.12, UnitLabel: "л/м²",
					Unit: model.ConsumptionUnit{Quantity: model.QuantityLiter, PerArea: true},
					PricesBySize: map[string]float64{
						"2.7л": 2350,
						"9л":   6900,
					},
					CategorySlug: "paints", SubSlug: "interior",
				},
				{
					ID: "ceresit-ct17", URLID: "ceresit-ct17", Name: "Грунтовка Ceresit CT 17",
					Consumption: 0.15, UnitLabel: "л/м²",
					Unit: model.ConsumptionUnit{Quantity: model.QuantityLiter, PerArea: true},
					PricesBySize: map[string]float64{
						"5л":  650,
						"10л": 1100,
					},
					CategorySlug: "paints", SubSlug: "primer",
				},
			},
			Hints: []string{"Второй слой наносите после полного высыхания первого."},
			Formula: model.Formula{
				Kind: model.FormulaArea, AreaKey: "area", LayersKey: "layers",
			},
		},
		{
			Slug:        "gipsokarton",
			Name:        "Гипсокартон",
			Description: "Листы ГКЛ с запасом на подрезку",
			Icon:        "sheet",
			Inputs: []model.Field{
				{Key: "area", Label: "Площадь обшивки", Unit: "м²", Default: 20, Min: 1, Max: 500, Step: 1},
			},
			Products: []model.Product{
				{
					ID: "knauf-gkl-125", URLID: "knauf-gkl-2500x1200x125", Name: "Knauf ГКЛ 12.5 мм",
					Consumption: 3.0, UnitLabel: "м²/лист",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityM2, PerPiece: true},
					PackSize: 3.0, Price: 350, SizeText: "2500×1200×12.5 мм",
					CategorySlug: "sheets", SubSlug: "drywall",
				},
				{
					ID: "volma-gkl-95", URLID: "volma-gkl-2500x1200x95", Name: "Волма ГКЛ 9.5 мм",
					Consumption: 3.0, UnitLabel: "м²/лист",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityM2, PerPiece: true},
					PackSize: 3.0, Price: 295, SizeText: "2500×1200×9.5 мм",
					CategorySlug: "sheets", SubSlug: "drywall",
				},
			},
			Hints: []string{"Стыки листов должны приходиться на профиль."},
			Formula: model.Formula{
				Kind: model.FormulaSheets, AreaKey: "area", WastePercent: 10,
				ResultUnit: "листов",
			},
		},
		{
			Slug:        "profnastil",
			Name:        "Профнастил",
			Description: "Кровля и забор: листы по длине и ширине ската",
			Icon:        "roof",
			Inputs: []model.Field{
				{Key: "length", Label: "Длина", Unit: "м", Default: 6, Min: 1, Max: 100, Step: 0.5},
				{Key: "width", Label: "Ширина", Unit: "м", Default: 5, Min: 1, Max: 100, Step: 0.5},
			},
			Products: []model.Product{
				{
					ID: "pn-s8", URLID: "profnastil-s8-2m", Name: "Профнастил С8, лист 2 м",
					Consumption: 2.3, UnitLabel: "м²/лист",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityM2, PerPiece: true},
					Price:    780, SizeText: "рабочая ширина 1.15 м",
					CategorySlug: "roofing", SubSlug: "profiled-sheet",
				},
				{
					ID: "pn-s20", URLID: "profnastil-s20-25m", Name: "Профнастил С20, лист 2.5 м",
					Consumption: 2.875, UnitLabel: "м²/лист",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityM2, PerPiece: true},
					Price:    1040, SizeText: "рабочая ширина 1.15 м",
					CategorySlug: "roofing", SubSlug: "profiled-sheet",
				},
			},
			Hints: []string{"Крепите лист в нижнюю волну, 8–10 саморезов на м²."},
			Formula: model.Formula{
				Kind: model.FormulaSheets, LengthKey: "length", WidthKey: "width",
				WastePercent: 10, SheetWidth: 1.15,
				ResultUnit:         "листов",
				ResultUnitTemplate: "листов (рабочая ширина %vм)",
			},
		},
		{
			Slug:        "uteplitel",
			Name:        "Утеплитель",
			Description: "Минеральная вата в упаковках по покрываемой площади",
			Icon:        "insulation",
			Inputs: []model.Field{
				{Key: "area", Label: "Площадь утепления", Unit: "м²", Default: 30, Min: 1, Max: 500, Step: 1},
			},
			Products: []model.Product{
				{
					ID: "rockwool-light", URLID: "rockwool-light-batts-50", Name: "Роквул Лайт Баттс 50 мм",
					Consumption: 2.88, UnitLabel: "м²/уп",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityM2, PerPiece: true},
					PackSize: 2.88, Price: 950, SizeText: "1000×600×50 мм, 8 плит",
					CategorySlug: "insulation", SubSlug: "mineral-wool",
				},
			},
			Hints: []string{"Укладывайте плиты враспор, без зазоров."},
			Formula: model.Formula{
				Kind: model.FormulaSheets, AreaKey: "area", WastePercent: 5,
				ResultUnit: "упаковок",
			},
		},
		{
			Slug:        "kley-gazoblok",
			Name:        "Клей для газоблока",
			Description: "Монтажный клей по числу блоков",
			Icon:        "blocks",
			Inputs: []model.Field{
				{Key: "blocks", Label: "Количество блоков", Unit: "шт", Default: 100, Min: 1, Max: 5000, Step: 10},
			},
			Products: []model.Product{
				{
					ID: "volma-blok", URLID: "volma-blok-25kg", Name: "Волма Блок",
					Consumption: 1.5, UnitLabel: "кг/шт",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerPiece: true},
					PackSize: 25, Price: 310, CategorySlug: "dry-mixes", SubSlug: "adhesive",
				},
				{
					ID: "ceresit-ct21", URLID: "ceresit-ct21-25kg", Name: "Ceresit CT 21",
					Consumption: 1.4, UnitLabel: "кг/шт",
					Unit:     model.ConsumptionUnit{Quantity: model.QuantityKg, PerPiece: true},
					PackSize: 25, Price: 390, CategorySlug: "dry-mixes", SubSlug: "adhesive",
				},
			},
			Hints: []string{"Расход указан для блока 600×300×200 мм и шва 2 мм."},
			Formula: model.Formula{
				Kind: model.FormulaPieces, QuantityKey: "blocks",
				ResultUnit: "мешков",
			},
		},
	}
}
