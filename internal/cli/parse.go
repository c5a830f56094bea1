package cli

import (
	"fmt"
	"strconv"
	"strings"

	"recordbook/internal/core"
)

// parsePosition turns a 1-based list number into a zero-based index. Range
// checks are left to the store so the message matches other lookups.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a list number", core.ErrValidation, s)
	}
	return n - 1, nil
}

// parsePrice accepts whole amounts with optional thousands separators and a
// trailing 원, e.g. "4,500" or "4500원". Negative values are returned as-is
// for the service to reject.
func parsePrice(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "원")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: price is required", core.ErrValidation)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid price %q", core.ErrValidation, s)
	}
	return n, nil
}

// parseOptionalDate returns an absent date for "" so the service reports the
// missing value itself.
func parseOptionalDate(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, nil
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", core.ErrValidation, s)
	}
	return d, nil
}

// formatPrice renders 4500 as "4,500".
func formatPrice(n int) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
