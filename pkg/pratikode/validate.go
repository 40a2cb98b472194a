package pratikode

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

type field struct {
	name  string
	value any
}

// validateRequired fails on the first field that is nil or an empty string.
func validateRequired(fields ...field) error {
	for _, f := range fields {
		switch v := f.value.(type) {
		case nil:
			return missing(f.name)
		case string:
			if v == "" {
				return missing(f.name)
			}
		}
	}
	return nil
}

func validatePositive(name string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: name, Reason: "must be greater than zero"}
	}
	if amount.Shift(minorUnitExp).GreaterThan(maxMinorUnits) {
		return &ValidationError{Field: name, Reason: "is too large"}
	}
	if FormatAmount(amount) == 0 {
		return &ValidationError{Field: name, Reason: "is smaller than one minor unit"}
	}
	return nil
}

func missing(name string) error {
	return &ValidationError{Field: name, Reason: "is missing or empty"}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
