package store

import (
	"strings"
	"time"
)

// InsertAnalysis records an analysis summary and returns its ID.
func (db *DB) InsertAnalysis(a *AnalysisRow) (int64, error) {
	recordedAt := a.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	result, err := db.conn.Exec(
		`INSERT INTO analyses
		(recorded_at, source, score, total_possible, strength, entropy, is_strong, failed_checks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		recordedAt.Format(time.RFC3339), a.Source, a.Score, a.TotalPossible,
		a.Strength, a.Entropy, a.IsStrong, strings.Join(a.FailedChecks, ","),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetRecentAnalyses returns the most recent analysis summaries, newest
// first, up to limit (all rows when limit <= 0).
func (db *DB) GetRecentAnalyses(limit int) ([]AnalysisRow, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.Query(
		`SELECT id, recorded_at, source, score, total_possible, strength, entropy, is_strong, failed_checks
		 FROM analyses ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var analyses []AnalysisRow
	for rows.Next() {
		var a AnalysisRow
		var recordedAt, failed string
		if err := rows.Scan(
			&a.ID, &recordedAt, &a.Source, &a.Score, &a.TotalPossible,
			&a.Strength, &a.Entropy, &a.IsStrong, &failed,
		); err != nil {
			return nil, err
		}
		a.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		if failed != "" {
			a.FailedChecks = strings.Split(failed, ",")
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// CountByStrength returns how many recorded analyses carry each strength
// label.
func (db *DB) CountByStrength() (map[string]int, error) {
	rows, err := db.conn.Query("SELECT strength, COUNT(*) FROM analyses GROUP BY strength")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var strength string
		var n int
		if err := rows.Scan(&strength, &n); err != nil {
			return nil, err
		}
		counts[strength] = n
	}
	return counts, rows.Err()
}
