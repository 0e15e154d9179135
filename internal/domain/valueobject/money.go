package valueobject

import "github.com/shopspring/decimal"

// MoneyPlaces is the precision amounts are stored with.
const MoneyPlaces = 2

// IsWholeCents reports whether d can be stored without losing digits.
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}
