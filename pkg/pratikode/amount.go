package pratikode

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// The API moves money as integers in minor units (kuruş): 5.00 TRY is sent
// as 500. Every amount that crosses the wire goes through FormatAmount on the
// way out and ParseAmount on the way in.
const minorUnitExp = 2

// FormatAmount converts a decimal amount to minor units, truncating toward zero.
func FormatAmount(amount decimal.Decimal) int64 {
	return amount.Shift(minorUnitExp).IntPart()
}

// ParseAmount converts a minor-unit value as found in a decoded response
// (json.Number, string, integer or float) back to a decimal amount.
func ParseAmount(v any) (decimal.Decimal, error) {
	var minor decimal.Decimal
	switch x := v.(type) {
	case nil:
		return decimal.Zero, nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("pratikode: invalid amount %q: %w", x, err)
		}
		minor = d
	case string:
		if x == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero, fmt.Errorf("pratikode: invalid amount %q: %w", x, err)
		}
		minor = d
	case int:
		minor = decimal.NewFromInt(int64(x))
	case int64:
		minor = decimal.NewFromInt(x)
	case float64:
		minor = decimal.NewFromFloat(x)
	case decimal.Decimal:
		minor = x
	default:
		return decimal.Zero, fmt.Errorf("pratikode: unsupported amount type %T", v)
	}
	return minor.Shift(-minorUnitExp), nil
}

// FormatDecimal renders an amount with exactly two decimal places.
func FormatDecimal(amount decimal.Decimal) string {
	return amount.StringFixed(minorUnitExp)
}

// formatMinorField adds "<key>Formatted" next to key when key holds a
// parsable minor-unit amount.
func formatMinorField(m map[string]any, key string) {
	v, ok := m[key]
	if !ok || v == nil {
		return
	}
	d, err := ParseAmount(v)
	if err != nil {
		return
	}
	m[key+"Formatted"] = FormatDecimal(d)
}
