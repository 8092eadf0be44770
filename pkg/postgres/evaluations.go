package postgres

import (
	"context"
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/db"
)

// InsertEvaluation records the summary of an evaluation run
func (d *DB) InsertEvaluation(ctx context.Context, record db.EvaluationRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedule_evaluation (id, season_id, generated_at, overall_score, passed_checks, total_checks, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, record.ID, record.SeasonID, record.GeneratedAt, record.OverallScore,
		record.PassedChecks, record.TotalChecks, record.Summary)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return nil
}

// GetEvaluations retrieves the evaluation history for a season, newest
// first.
func (d *DB) GetEvaluations(ctx context.Context, seasonID string) ([]db.EvaluationRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, season_id, generated_at, overall_score, passed_checks, total_checks, summary
		FROM schedule_evaluation
		WHERE season_id = $1
		ORDER BY generated_at DESC
	`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var records []db.EvaluationRecord
	for rows.Next() {
		var r db.EvaluationRecord
		if err := rows.Scan(&r.ID, &r.SeasonID, &r.GeneratedAt, &r.OverallScore,
			&r.PassedChecks, &r.TotalChecks, &r.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluations: %w", err)
	}

	return records, nil
}
