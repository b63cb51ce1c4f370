package utils

import "github.com/shopspring/decimal"

// RoundHalfUp arredonda em base decimal, evitando que 1.005 vire 1.00
func RoundHalfUp(f float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return rounded
}
