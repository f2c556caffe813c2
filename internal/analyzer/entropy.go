package analyzer

import "math"

// Character-class alphabet sizes used by the entropy estimate. Symbols are
// approximated as a 32-character pool.
const (
	poolLowercase = 26
	poolUppercase = 26
	poolDigits    = 10
	poolSymbols   = 32
)

// Entropy returns the theoretical bit strength of the candidate:
// length times log2 of the combined alphabet size of the character
// classes present. It assumes uniform independent selection, so it is an
// upper bound rather than a guessability estimate. Returns 0 for the
// empty string.
func Entropy(password string) float64 {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	pool := 0
	if hasLower {
		pool += poolLowercase
	}
	if hasUpper {
		pool += poolUppercase
	}
	if hasDigit {
		pool += poolDigits
	}
	if hasSymbol {
		pool += poolSymbols
	}

	if pool == 0 {
		return 0
	}
	return float64(len([]rune(password))) * math.Log2(float64(pool))
}
