// Package money parses and formats naira amounts. All ledger arithmetic uses
// shopspring decimals; floats never touch monetary values.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const Symbol = "₦"

// Parse converts user-facing amount text into a decimal. It accepts an
// optional currency symbol, thousands separators and spaces, at most two
// decimal places, and rejects negative or non-numeric input.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, Symbol)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount is not a valid number: %q", s)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative: %q", s)
	}

	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount has more than two decimal places: %q", s)
	}

	return d, nil
}

// Format renders an amount with the currency symbol, thousands separators and
// two decimal places. It is the exact inverse of Parse for any amount Parse
// accepts.
func Format(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		grouped.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteString(",")
		}
		grouped.WriteString(intPart[i : i+3])
	}

	return sign + Symbol + grouped.String() + "." + fracPart
}
