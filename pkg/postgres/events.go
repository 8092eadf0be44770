package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

const eventColumns = `
	id, event_type, event_date, start_time, end_time,
	division_id, team_id, home_team_id, away_team_id,
	field_id, cage_id, season_period_id
`

// ListScheduledEvents retrieves all scheduled events for a season
func (d *DB) ListScheduledEvents(ctx context.Context, seasonID string) ([]model.ScheduledEvent, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM scheduled_event
		WHERE season_id = $1
	`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListScheduledEventsByPeriods retrieves all scheduled events belonging
// to the given season periods.
func (d *DB) ListScheduledEventsByPeriods(ctx context.Context, periodIDs []string) ([]model.ScheduledEvent, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM scheduled_event
		WHERE season_period_id = ANY($1)
	`, periodIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled events by period: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]model.ScheduledEvent, error) {
	var events []model.ScheduledEvent
	for rows.Next() {
		var e model.ScheduledEvent
		var eventType string
		var teamID, homeTeamID, awayTeamID, fieldID, cageID, periodID *string
		if err := rows.Scan(&e.ID, &eventType, &e.Date, &e.StartTime, &e.EndTime,
			&e.DivisionID, &teamID, &homeTeamID, &awayTeamID, &fieldID, &cageID, &periodID); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled event: %w", err)
		}
		e.EventType = model.EventType(eventType)
		if teamID != nil {
			e.TeamID = *teamID
		}
		if homeTeamID != nil {
			e.HomeTeamID = *homeTeamID
		}
		if awayTeamID != nil {
			e.AwayTeamID = *awayTeamID
		}
		if fieldID != nil {
			e.FieldID = *fieldID
		}
		if cageID != nil {
			e.CageID = *cageID
		}
		if periodID != nil {
			e.SeasonPeriodID = *periodID
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scheduled events: %w", err)
	}

	return events, nil
}
