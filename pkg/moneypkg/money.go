// Package moneypkg pins the fixed-point representation of monetary amounts.
package moneypkg

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits of the currency.
const Scale = 2

// Round rounds an amount to the currency scale, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// IsPositive reports whether the amount is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
