// Package validate holds the pure predicate helpers shared by the ledger
// service and the HTTP layer.
package validate

import (
	"fmt"
	"strings"
)

// Nigerian mobile numbers: 10 significant digits after the country code, the
// first of which is always 7, 8 or 9.
const (
	countryCode      = "234"
	subscriberDigits = 10
)

// NormalizePhone canonicalizes a Nigerian phone number to +234XXXXXXXXXX.
// It accepts +234XXXXXXXXXX, 234XXXXXXXXXX and 0XXXXXXXXXX as equivalent,
// with separators (spaces, dashes, parentheses) stripped.
func NormalizePhone(raw string) (string, error) {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	var digits string
	switch {
	case strings.HasPrefix(stripped, "+"+countryCode):
		digits = stripped[len("+"+countryCode):]
	case strings.HasPrefix(stripped, countryCode):
		digits = stripped[len(countryCode):]
	case strings.HasPrefix(stripped, "0"):
		digits = stripped[1:]
	default:
		return "", fmt.Errorf("phone number %q is not a recognized format", raw)
	}

	if len(digits) != subscriberDigits || !isDigits(digits) {
		return "", fmt.Errorf("phone number %q is not a valid mobile number", raw)
	}

	if digits[0] != '7' && digits[0] != '8' && digits[0] != '9' {
		return "", fmt.Errorf("phone number %q is not a valid mobile number", raw)
	}

	return "+" + countryCode + digits, nil
}

// IsValidOTP reports whether s is exactly six ASCII digits.
func IsValidOTP(s string) bool {
	return len(s) == 6 && isDigits(s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
