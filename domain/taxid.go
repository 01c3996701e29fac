package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeTaxID strips punctuation from a CPF and checks its length and both
// check digits. It returns the eleven digits on success.
func NormalizeTaxID(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	if len(digits) != 11 {
		return "", fmt.Errorf("%w: %q must have 11 digits", ErrInvalidTaxID, raw)
	}
	if strings.Count(digits, digits[:1]) == 11 {
		return "", fmt.Errorf("%w: %q has all digits equal", ErrInvalidTaxID, raw)
	}
	if checkDigit(digits[:9]) != int(digits[9]-'0') || checkDigit(digits[:10]) != int(digits[10]-'0') {
		return "", fmt.Errorf("%w: %q check digits do not match", ErrInvalidTaxID, raw)
	}
	return digits, nil
}

// checkDigit computes the CPF verifier for prefix using weights len+1 down to 2.
func checkDigit(prefix string) int {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
