// Package types provides common type aliases and monetary helpers.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// Common constants used by invoice arithmetic.
var (
	Hundred    = decimal.NewFromInt(100)
	TwoHundred = decimal.NewFromInt(200)
)

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Round2 rounds to 2 decimal places, half away from zero.
//
// Invoice arithmetic rounds after EVERY intermediate step, not once at the
// end. Accumulating unrounded values and rounding late produces totals that
// disagree with the committed invoice by a paisa or more.
func Round2(d Money) Money {
	return d.Round(2)
}

// RoundUnit rounds to a whole currency unit, half away from zero.
// Used for the invoice grand total; the fractional remainder becomes
// the round-off adjustment.
func RoundUnit(d Money) Money {
	return d.Round(0)
}

// PercentOf returns base × percent / 100, rounded to 2 decimal places.
func PercentOf(base, percent Money) Money {
	return Round2(base.Mul(percent).Div(Hundred))
}

// HalfPercentOf returns base × (percent/2) / 100, rounded to 2 decimal
// places. This is the CGST or SGST half of a split GST rate.
func HalfPercentOf(base, percent Money) Money {
	return Round2(base.Mul(percent).Div(TwoHundred))
}
