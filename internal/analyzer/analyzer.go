package analyzer

// Analyzer runs the check battery against candidates. The reference lists
// are supplied once at construction and never mutated, so a single
// Analyzer is safe to share across concurrent analyses.
type Analyzer struct {
	common Lookup
	dict   Lookup
}

// New returns an Analyzer backed by the given reference lists. Either
// list may be nil; the corresponding checks then pass for every candidate.
func New(common, dict Lookup) *Analyzer {
	return &Analyzer{common: common, dict: dict}
}

// Analyze runs all checks against the candidate, computes the entropy
// estimate, classifies the strength, and assembles the result. It is
// total over all string inputs, including the empty string, and has no
// side effects.
func (a *Analyzer) Analyze(password string, ctx Context) Result {
	criteria := RunChecks(password, ctx, a.common, a.dict)

	score := 0
	for _, pass := range criteria {
		if pass {
			score++
		}
	}

	// Non-nil even when everything passes, so JSON output carries an
	// empty list rather than null.
	failed := make([]CheckID, 0, TotalChecks)
	for _, id := range CheckOrder {
		if !criteria[id] {
			failed = append(failed, id)
		}
	}

	entropy := Entropy(password)

	return Result{
		Score:         score,
		TotalPossible: TotalChecks,
		Strength:      Classify(score, entropy),
		Entropy:       entropy,
		IsStrong:      score >= strongThreshold,
		FailedChecks:  failed,
	}
}
