package entity

import "github.com/shopspring/decimal"

// Money is an exact decimal amount in the marketplace currency.
type Money = decimal.Decimal

// NewMoney builds a Money value from a float literal. Intended for config and tests.
func NewMoney(amount float64) Money {
	return decimal.NewFromFloat(amount)
}

// ZeroMoney is the additive identity.
var ZeroMoney = decimal.Zero

// MoneyFromInt builds a Money value from a whole number, typically a quantity.
func MoneyFromInt(v int) Money {
	return decimal.NewFromInt(int64(v))
}
