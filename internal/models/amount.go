package models

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount is a decimal value as it appears in upstream API payloads.
// The upstream is not strictly trusted: a missing, null, or non-numeric
// balance must not fail the whole collection decode, so malformed values
// collapse to zero instead of returning an error.
type Amount struct {
	decimal.Decimal
}

var jsonNull = []byte("null")

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		a.Decimal = decimal.Zero
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}
