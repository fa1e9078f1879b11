package domain

import (
	"math"
	"strings"
)

// Value objects. All of them are immutable containers: a new value replaces
// the old one wholesale, there is no in-place mutation.

type Name string

func (n Name) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}

type Description string

func (d Description) IsBlank() bool {
	return strings.TrimSpace(string(d)) == ""
}

type Brand string

type Batch string

// Amount is money in cents. The wire representation is a decimal value
// (10.50), the domain representation is an integer (1050).
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

func NewAmountFromValue(value float64) Amount {
	return Amount(math.Round(value * 100))
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) ToValue() float64 {
	return float64(a) / 100
}

func (a Amount) IsPositive() bool {
	return a > 0
}

type Stock int

func (s Stock) CanDeduct(quantity int) bool {
	return int(s) >= quantity
}

func (s Stock) Deduct(quantity int) Stock {
	return s - Stock(quantity)
}
