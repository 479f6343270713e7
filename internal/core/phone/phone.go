// Package phone validates and normalizes phone numbers into a canonical
// +-prefixed dialable form.
package phone

import (
	"errors"
	"strings"
)

// E.164 bounds for international numbers (digits after the +).
const (
	minIntlDigits = 7
	maxIntlDigits = 15
)

// ErrInvalidFormat is returned when a number fails validation.
var ErrInvalidFormat = errors.New("invalid phone number format")

// Clean strips everything except digits, preserving a single leading +.
// Any + that is not the first meaningful character is dropped.
func Clean(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks a raw number against the accepted formats:
//
//   - +-prefixed: 7 to 15 digits after the + (E.164 bounds)
//   - bare: exactly 10 digits (domestic), or 11 digits starting with 1
//
// Returns the cleaned form on success, ErrInvalidFormat otherwise.
func Validate(raw string) (string, error) {
	cleaned := Clean(raw)

	digits := strings.TrimPrefix(cleaned, "+")
	if len(digits) == 0 {
		return "", ErrInvalidFormat
	}

	if strings.HasPrefix(cleaned, "+") {
		if len(digits) < minIntlDigits || len(digits) > maxIntlDigits {
			return "", ErrInvalidFormat
		}
		return cleaned, nil
	}

	switch {
	case len(digits) == 10:
		return cleaned, nil
	case len(digits) == 11 && digits[0] == '1':
		return cleaned, nil
	default:
		return "", ErrInvalidFormat
	}
}

// Normalize converts a validated number to its canonical +-prefixed form.
// Input must have passed Validate; Normalize is idempotent on its own output.
func Normalize(cleaned string) string {
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}

	switch {
	case len(cleaned) == 11 && cleaned[0] == '1':
		return "+" + cleaned
	default:
		// 10-digit domestic, and the catch-all for anything validation
		// may admit in the future: assume US and prepend the country code.
		return "+1" + cleaned
	}
}

// Canonicalize validates and normalizes in one step.
func Canonicalize(raw string) (string, error) {
	cleaned, err := Validate(raw)
	if err != nil {
		return "", err
	}
	return Normalize(cleaned), nil
}

// HasDigit reports whether the token contains at least one digit character.
// Used to decide if an unresolved token is a plausible number at all.
func HasDigit(token string) bool {
	return strings.ContainsAny(token, "0123456789")
}
