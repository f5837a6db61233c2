package engine

import "math"

// CeilPackages converts a raw required quantity into a whole number of
// sellable packages. A non-positive pack size means the material is sold
// loose and raw passes through unchanged. Any positive raw amount needs at
// least one package.
func CeilPackages(raw, packSize float64) float64 {
	if packSize <= 0 {
		return raw
	}
	if raw <= 0 {
		return 0
	}
	packages := math.Ceil(raw / packSize)
	if packages < 1 {
		packages = 1
	}
	return packages
}

// RoundTo rounds half-up to the given number of decimals. It is applied only
// at the display boundary, never inside intermediate formula math, so
// rounding error does not compound across chained computations.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// ApplyWaste uplifts a measured area by a cutting-waste percentage.
func ApplyWaste(area, wastePercent float64) float64 {
	return area * (1 + wastePercent/100)
}

// sanitize maps NaN, infinite and negative input values to zero. Out-of-range
// values are the presentation layer's job to clamp; the engine only guards
// against values that would poison the arithmetic.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
