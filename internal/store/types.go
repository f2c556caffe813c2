package store

import "time"

// AnalysisRow is one recorded analysis summary. It carries the result
// figures only; the candidate is never stored.
type AnalysisRow struct {
	ID            int64     `json:"id"`
	RecordedAt    time.Time `json:"recorded_at"`
	Source        string    `json:"source"`
	Score         int       `json:"score"`
	TotalPossible int       `json:"total_possible"`
	Strength      string    `json:"strength"`
	Entropy       float64   `json:"entropy"`
	IsStrong      bool      `json:"is_strong"`
	FailedChecks  []string  `json:"failed_checks"`
}
