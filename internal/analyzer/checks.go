package analyzer

import "strings"

// minLength is the minimum acceptable candidate length.
const minLength = 12

// specialChars is the fixed symbol set the special_char check accepts.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// dictMinEntryLen: dictionary entries must be longer than this many
// characters to count as a match.
const dictMinEntryLen = 3

// RunChecks evaluates every policy check against the candidate and
// context, producing the full criteria map. All checks are pure functions
// of their inputs and independent of one another. common holds the
// common-secrets list and dict the language dictionary; either may be nil.
func RunChecks(password string, ctx Context, common, dict Lookup) Criteria {
	lower := strings.ToLower(password)

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	return Criteria{
		CheckLength:             len([]rune(password)) >= minLength,
		CheckUppercase:          hasUpper,
		CheckLowercase:          hasLower,
		CheckNumber:             hasDigit,
		CheckSpecialChar:        strings.ContainsAny(password, specialChars),
		CheckNotCommon:          !contains(common, lower),
		CheckNoSequential:       !HasSequentialRun(lower),
		CheckNoRepeated:         !HasRepeatedRun(lower),
		CheckNoPersonalInfo:     !ContainsPersonalInfo(lower, ctx),
		CheckNotSimilarOld:      !SimilarToOld(lower, ctx.OldPassword),
		CheckNoDictWords:        !matchesSubstring(dict, lower),
		CheckNoKeyboardPatterns: !HasKeyboardPattern(lower),
	}
}

func contains(list Lookup, word string) bool {
	return list != nil && list.Contains(word)
}

func matchesSubstring(list Lookup, candidate string) bool {
	return list != nil && list.ContainsSubstringOf(candidate, dictMinEntryLen)
}
