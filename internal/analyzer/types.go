// Package analyzer evaluates candidate passwords against a fixed battery
// of structural and contextual policy checks, producing a composite score,
// an entropy estimate, and a categorical strength label.
package analyzer

// CheckID identifies one of the twelve policy checks.
type CheckID string

// The twelve policy checks. Each is phrased in the positive direction:
// true in a Criteria map means the candidate passes that check.
const (
	CheckLength             CheckID = "length"
	CheckUppercase          CheckID = "uppercase"
	CheckLowercase          CheckID = "lowercase"
	CheckNumber             CheckID = "number"
	CheckSpecialChar        CheckID = "special_char"
	CheckNotCommon          CheckID = "not_common"
	CheckNoSequential       CheckID = "no_sequential"
	CheckNoRepeated         CheckID = "no_repeated"
	CheckNoPersonalInfo     CheckID = "no_personal_info"
	CheckNotSimilarOld      CheckID = "not_similar_old"
	CheckNoDictWords        CheckID = "no_dict_words"
	CheckNoKeyboardPatterns CheckID = "no_keyboard_patterns"
)

// CheckOrder is the fixed enumeration order for the checks. Failed checks
// in a Result are reported in this order regardless of evaluation order.
var CheckOrder = [...]CheckID{
	CheckLength,
	CheckUppercase,
	CheckLowercase,
	CheckNumber,
	CheckSpecialChar,
	CheckNotCommon,
	CheckNoSequential,
	CheckNoRepeated,
	CheckNoPersonalInfo,
	CheckNotSimilarOld,
	CheckNoDictWords,
	CheckNoKeyboardPatterns,
}

// TotalChecks is the number of policy checks run per candidate.
const TotalChecks = len(CheckOrder)

// strongThreshold is the minimum passing count for a strong verdict
// (three quarters of the battery).
const strongThreshold = TotalChecks * 3 / 4

// Criteria maps every check to its pass/fail outcome. A valid Criteria
// map always contains all twelve checks.
type Criteria map[CheckID]bool

// Context carries optional user-supplied data that unlocks the contextual
// checks. An empty field counts as absent, and the corresponding check
// passes vacuously.
type Context struct {
	Username    string
	Email       string
	OldPassword string
}

// Lookup is the read-only capability the analyzer needs from a reference
// list. Implementations hold lowercase entries; callers pass lowercased
// input. A nil lookup behaves as an empty list, so a missing reference
// resource degrades check sensitivity instead of erroring.
type Lookup interface {
	// Contains reports whether word is an exact member of the list.
	Contains(word string) bool

	// ContainsSubstringOf reports whether any entry longer than minLen
	// characters appears as a substring of s.
	ContainsSubstringOf(s string, minLen int) bool
}

// Strength is the categorical label derived from score and entropy.
type Strength string

// Strength labels, ordered strongest to weakest.
const (
	StrengthExcellent  Strength = "excellent"
	StrengthVeryStrong Strength = "very_strong"
	StrengthStrong     Strength = "strong"
	StrengthModerate   Strength = "moderate"
	StrengthWeak       Strength = "weak"
	StrengthVeryWeak   Strength = "very_weak"
)

// Result is the terminal artifact of one analysis.
type Result struct {
	// Score is the count of passing checks, in [0, TotalChecks].
	Score int `json:"score"`

	// TotalPossible is the size of the check battery (always 12).
	TotalPossible int `json:"total_possible"`

	// Strength is the classifier label for this score/entropy pair.
	Strength Strength `json:"strength"`

	// Entropy is the theoretical bit-strength estimate. It is an upper
	// bound assuming uniform independent character selection, not a
	// guess-resistance measurement.
	Entropy float64 `json:"entropy"`

	// IsStrong is true when at least three quarters of the checks pass.
	// Entropy does not gate this verdict.
	IsStrong bool `json:"is_strong"`

	// FailedChecks lists the failing check IDs in CheckOrder order.
	// Its length is always TotalPossible minus Score.
	FailedChecks []CheckID `json:"failed_checks"`
}
