package postgres

import (
	"context"
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// ListTeams retrieves all teams registered for a season
func (d *DB) ListTeams(ctx context.Context, seasonID string) ([]model.Team, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, division_id FROM team WHERE season_id = $1 ORDER BY id
	`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.DivisionID); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}

	return teams, nil
}

// ListDivisions retrieves all divisions
func (d *DB) ListDivisions(ctx context.Context) ([]model.Division, error) {
	rows, err := d.pool.Query(ctx, `SELECT id, name FROM division ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query divisions: %w", err)
	}
	defer rows.Close()

	var divisions []model.Division
	for rows.Next() {
		var div model.Division
		if err := rows.Scan(&div.ID, &div.Name); err != nil {
			return nil, fmt.Errorf("failed to scan division: %w", err)
		}
		divisions = append(divisions, div)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating divisions: %w", err)
	}

	return divisions, nil
}

// ListSeasonFields retrieves the fields available to a season
func (d *DB) ListSeasonFields(ctx context.Context, seasonID string) ([]model.SeasonField, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT field_id, field_name FROM season_field WHERE season_id = $1 ORDER BY field_id
	`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query season fields: %w", err)
	}
	defer rows.Close()

	var fields []model.SeasonField
	for rows.Next() {
		var f model.SeasonField
		if err := rows.Scan(&f.FieldID, &f.FieldName); err != nil {
			return nil, fmt.Errorf("failed to scan season field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating season fields: %w", err)
	}

	return fields, nil
}

// ListDivisionConfigsBySeason retrieves the division configs for a
// season, including their day preferences and week overrides.
func (d *DB) ListDivisionConfigsBySeason(ctx context.Context, seasonID string) ([]model.DivisionConfig, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT division_id, season_id, games_per_week, practices_per_week,
		       cage_sessions_per_week, min_consecutive_day_gap,
		       max_games_per_season, game_spacing_enabled
		FROM division_config
		WHERE season_id = $1
		ORDER BY division_id
	`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query division configs: %w", err)
	}

	var configs []model.DivisionConfig
	for rows.Next() {
		var c model.DivisionConfig
		var maxGames *int
		if err := rows.Scan(&c.DivisionID, &c.SeasonID, &c.GamesPerWeek, &c.PracticesPerWeek,
			&c.CageSessionsPerWeek, &c.MinConsecutiveDayGap, &maxGames, &c.GameSpacingEnabled); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan division config: %w", err)
		}
		if maxGames != nil {
			c.MaxGamesPerSeason = *maxGames
		}
		configs = append(configs, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating division configs: %w", err)
	}

	for i := range configs {
		if err := d.loadConfigDetails(ctx, &configs[i]); err != nil {
			return nil, err
		}
	}

	return configs, nil
}

func (d *DB) loadConfigDetails(ctx context.Context, cfg *model.DivisionConfig) error {
	prefRows, err := d.pool.Query(ctx, `
		SELECT day_of_week, priority, max_games_per_day
		FROM game_day_preference
		WHERE division_id = $1 AND season_id = $2
		ORDER BY ordinal, day_of_week
	`, cfg.DivisionID, cfg.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to query game day preferences: %w", err)
	}
	for prefRows.Next() {
		var pref model.GameDayPreference
		var priority string
		var maxGames *int
		if err := prefRows.Scan(&pref.DayOfWeek, &priority, &maxGames); err != nil {
			prefRows.Close()
			return fmt.Errorf("failed to scan game day preference: %w", err)
		}
		pref.Priority = model.DayPriority(priority)
		if maxGames != nil {
			pref.MaxGamesPerDay = *maxGames
		}
		cfg.GameDayPreferences = append(cfg.GameDayPreferences, pref)
	}
	prefRows.Close()
	if err := prefRows.Err(); err != nil {
		return fmt.Errorf("error iterating game day preferences: %w", err)
	}

	overrideRows, err := d.pool.Query(ctx, `
		SELECT week_number, games_per_week
		FROM game_week_override
		WHERE division_id = $1 AND season_id = $2
		ORDER BY week_number
	`, cfg.DivisionID, cfg.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to query game week overrides: %w", err)
	}
	for overrideRows.Next() {
		var o model.GameWeekOverride
		if err := overrideRows.Scan(&o.WeekNumber, &o.GamesPerWeek); err != nil {
			overrideRows.Close()
			return fmt.Errorf("failed to scan game week override: %w", err)
		}
		cfg.GameWeekOverrides = append(cfg.GameWeekOverrides, o)
	}
	overrideRows.Close()
	if err := overrideRows.Err(); err != nil {
		return fmt.Errorf("error iterating game week overrides: %w", err)
	}

	return nil
}
