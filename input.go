package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseIndex reads a 1-based selection typed by the user.
//
// It only checks that s is an integer, the range is checked by the Ledger.
func ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return i, nil
}

// ParseAmount reads an amount typed by the user. A leading "$" is accepted.
func ParseAmount(s string) (Money, error) {
	str := strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return M(d), nil
}

// ParseText reads a category or a description typed by the user.
//
// The ledger file has no escaping, so the field separator and line breaks are rejected.
func ParseText(s string) (string, error) {
	str := strings.TrimSpace(s)
	if strings.ContainsAny(str, "|\r\n") {
		return "", fmt.Errorf("%q %w", s, ErrInvalidText)
	}
	return str, nil
}

// IsAffirmative reports whether a confirmation answer means yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
