package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// ErrSeasonNotFound is returned when a season lookup matches nothing
var ErrSeasonNotFound = errors.New("season not found")

// GetSeasonByID retrieves a season and its blackout dates
func (d *DB) GetSeasonByID(ctx context.Context, id string) (*model.Season, error) {
	var season model.Season
	var gamesStart *time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, start_date, end_date, games_start_date
		FROM season
		WHERE id = $1
	`, id).Scan(&season.ID, &season.Name, &season.StartDate, &season.EndDate, &gamesStart)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSeasonNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query season: %w", err)
	}
	if gamesStart != nil {
		season.GamesStartDate = *gamesStart
	}

	rows, err := d.pool.Query(ctx, `
		SELECT blackout_date FROM season_blackout WHERE season_id = $1 ORDER BY blackout_date
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query season blackouts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var blackout time.Time
		if err := rows.Scan(&blackout); err != nil {
			return nil, fmt.Errorf("failed to scan blackout date: %w", err)
		}
		season.BlackoutDates = append(season.BlackoutDates, blackout)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blackout dates: %w", err)
	}

	return &season, nil
}

// GetSeasonPeriodsByIDs retrieves the named season periods
func (d *DB) GetSeasonPeriodsByIDs(ctx context.Context, ids []string) ([]model.SeasonPeriod, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, season_id, name, start_date, end_date, event_types, auto_schedule
		FROM season_period
		WHERE id = ANY($1)
		ORDER BY start_date
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query season periods: %w", err)
	}
	defer rows.Close()

	var periods []model.SeasonPeriod
	for rows.Next() {
		var p model.SeasonPeriod
		var eventTypes []string
		if err := rows.Scan(&p.ID, &p.SeasonID, &p.Name, &p.StartDate, &p.EndDate, &eventTypes, &p.AutoSchedule); err != nil {
			return nil, fmt.Errorf("failed to scan season period: %w", err)
		}
		for _, et := range eventTypes {
			p.EventTypes = append(p.EventTypes, model.EventType(et))
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating season periods: %w", err)
	}

	return periods, nil
}
