package nutrition

import "math"

// Conversion factors. ozPerML matches the constant the dashboard has always
// displayed; kgPerLb is the exact avoirdupois definition.
const (
	ozPerML = 0.033814
	kgPerLb = 0.45359237
)

// MLToOz converts millilitres to fluid ounces rounded to the nearest ounce,
// the unit the hydration card displays.
func MLToOz(ml float64) int {
	return int(math.Round(ml * ozPerML))
}

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 {
	return lbs * kgPerLb
}

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) float64 {
	return kg / kgPerLb
}

// roundPct rounds a ratio expressed in percent to the nearest integer.
func roundPct(v float64) int {
	return int(math.Round(v))
}
