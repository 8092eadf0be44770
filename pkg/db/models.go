package db

import "time"

// EvaluationRecord is the persisted summary of one evaluation run,
// kept for trend review across schedule revisions.
type EvaluationRecord struct {
	ID           string
	SeasonID     string
	GeneratedAt  time.Time
	OverallScore int
	PassedChecks int
	TotalChecks  int
	Summary      string // one line per check
}
