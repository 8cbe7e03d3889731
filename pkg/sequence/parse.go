package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/fibgen/pkg/domain"
)

// ParseTermCount trims raw user input and converts it to a term count.
//
// It returns domain.ErrEmptyInput for blank input, domain.ErrNonIntegerInput
// when the text is not a base-10 int (out of range values included) and
// domain.ErrNegativeInput for counts below zero. Single underscores between
// digits are accepted as separators ("1_000").
func ParseTermCount(raw string) (int, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, domain.ErrEmptyInput
	}

	digits, err := stripDigitSeparators(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrNonIntegerInput, err)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrNonIntegerInput, err)
	}
	if n < 0 {
		return n, domain.ErrNegativeInput
	}
	return n, nil
}

// stripDigitSeparators removes underscores that sit between two digits.
func stripDigitSeparators(text string) (string, error) {
	if !strings.Contains(text, "_") {
		return text, nil
	}
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			b.WriteByte(text[i])
			continue
		}
		if i == 0 || i == len(text)-1 || !isDigit(text[i-1]) || !isDigit(text[i+1]) {
			return "", fmt.Errorf("misplaced digit separator in %q", text)
		}
	}
	return b.String(), nil
}

// CheckLimit returns domain.ErrTooManyTerms when n exceeds max.
// A max of zero or below disables the check.
func CheckLimit(n, max int) error {
	if max > 0 && n > max {
		return fmt.Errorf("%w: %d exceeds limit of %d", domain.ErrTooManyTerms, n, max)
	}
	return nil
}
