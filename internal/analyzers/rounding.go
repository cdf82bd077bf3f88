package analyzers

import "github.com/shopspring/decimal"

// Decimal places of every rounded figure in a report.
const (
	placesAverage = 2
	placesRate    = 1
	placesMoney   = 2
	placesPerUnit = 4
)

// roundTo rounds v to places decimals, halves away from zero.
func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundDecimal(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}

// ratio returns num/den, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
