// Package moneypkg provides parsing and validation of money amounts.
package moneypkg

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// Places is the finest scale an amount may carry.
	Places = 2
	// MaxIntegerDigits bounds the digits left of the decimal point.
	MaxIntegerDigits = 15
	// maxScale bounds the written decimals, trailing zeros included.
	maxScale = 18
)

// ErrInvalidAmount indicates a malformed, non-positive or out of range amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts a decimal string into a positive amount of at most Places
// decimals and MaxIntegerDigits integer digits.
func Parse(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	// Exponent and digit bounds come before Truncate, which rescales.
	exp := int64(d.Exponent())
	if exp < -maxScale || int64(d.NumDigits())+exp > MaxIntegerDigits {
		return decimal.Zero, ErrInvalidAmount
	}

	if exp < -Places && !d.Equal(d.Truncate(Places)) {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}

// ValidAmount validates that the field is a positive decimal string.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := Parse(s)
		return err == nil
	}

	return false
}
