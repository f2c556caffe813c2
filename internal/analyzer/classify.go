package analyzer

// classifyRule is one row of the classification ladder.
type classifyRule struct {
	minScore   int
	minEntropy float64
	label      Strength
}

// ladder is evaluated top to bottom; the first row whose thresholds both
// hold wins. The weak row ignores entropy and very_weak is the fallback.
var ladder = []classifyRule{
	{minScore: 10, minEntropy: 75, label: StrengthExcellent},
	{minScore: 8, minEntropy: 60, label: StrengthVeryStrong},
	{minScore: 6, minEntropy: 45, label: StrengthStrong},
	{minScore: 4, minEntropy: 30, label: StrengthModerate},
	{minScore: 2, minEntropy: 0, label: StrengthWeak},
}

// Classify converts a pass count and entropy estimate into a strength
// label.
func Classify(score int, entropy float64) Strength {
	for _, rule := range ladder {
		if score >= rule.minScore && entropy >= rule.minEntropy {
			return rule.label
		}
	}
	return StrengthVeryWeak
}
