package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bbaldino/ll-scheduler/internal/config"
	"github.com/bbaldino/ll-scheduler/pkg/core/evaluator"
	"github.com/bbaldino/ll-scheduler/pkg/core/model"
	"github.com/bbaldino/ll-scheduler/pkg/db"
)

// EvaluateParams selects what to evaluate. Exactly one of SeasonID or
// PeriodIDs drives the calendar mode: season milestones or explicit
// periods.
type EvaluateParams struct {
	SeasonID  string
	PeriodIDs []string
	Save      bool
}

// EvaluateSchedule is the single entry point of the evaluation engine:
// it fetches the snapshot, builds the calendar context and runs every
// check. A missing season or period set is fatal; everything else the
// checks find is reported, not raised.
func EvaluateSchedule(
	ctx context.Context,
	database db.Database,
	cfg *config.Config,
	logger *zap.Logger,
	params EvaluateParams,
) (*evaluator.ScheduleEvaluationResult, error) {
	input, err := buildSnapshot(ctx, database, cfg, logger, params)
	if err != nil {
		return nil, err
	}

	logger.Info("Running schedule evaluation",
		zap.String("season_id", input.SeasonID),
		zap.Int("events", len(input.Events)),
		zap.Int("teams", len(input.Teams)))

	result := evaluator.Evaluate(*input)

	logger.Info("Evaluation complete",
		zap.String("evaluation_id", result.ID),
		zap.Int("overall_score", result.OverallScore),
		zap.Int("passed_checks", result.PassedCount()))

	if params.Save {
		record := db.EvaluationRecord{
			ID:           result.ID,
			SeasonID:     result.SeasonID,
			GeneratedAt:  result.GeneratedAt,
			OverallScore: result.OverallScore,
			PassedChecks: result.PassedCount(),
			TotalChecks:  len(result.CheckResults()),
			Summary:      buildEvaluationSummary(result),
		}
		if err := database.InsertEvaluation(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save evaluation: %w", err)
		}
		logger.Info("Evaluation saved", zap.String("evaluation_id", result.ID))
	}

	return result, nil
}

// buildSnapshot fetches the season/periods first (fatal when missing),
// then launches the independent reference fetches concurrently and
// assembles the immutable evaluation input.
func buildSnapshot(
	ctx context.Context,
	database db.Database,
	cfg *config.Config,
	logger *zap.Logger,
	params EvaluateParams,
) (*evaluator.Input, error) {
	input := &evaluator.Input{SeasonID: params.SeasonID}

	var season *model.Season

	if len(params.PeriodIDs) > 0 {
		logger.Debug("Fetching season periods", zap.Strings("period_ids", params.PeriodIDs))
		periods, err := database.GetSeasonPeriodsByIDs(ctx, params.PeriodIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch season periods: %w", err)
		}
		if len(periods) != len(params.PeriodIDs) {
			return nil, fmt.Errorf("season periods not found: requested %d, found %d", len(params.PeriodIDs), len(periods))
		}
		input.Periods = periods
		input.SeasonID = periods[0].SeasonID
		input.Calendar = evaluator.NewPeriodContext(periods)
	} else {
		logger.Debug("Fetching season", zap.String("season_id", params.SeasonID))
		fetched, err := database.GetSeasonByID(ctx, params.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch season: %w", err)
		}
		season = fetched
	}

	// The remaining reads are independent, so they run concurrently
	// against the same point-in-time snapshot.
	var wg sync.WaitGroup
	var eventsErr, teamsErr, divisionsErr, configsErr, fieldsErr error

	wg.Add(5)
	go func() {
		defer wg.Done()
		if len(params.PeriodIDs) > 0 {
			input.Events, eventsErr = database.ListScheduledEventsByPeriods(ctx, params.PeriodIDs)
		} else {
			input.Events, eventsErr = database.ListScheduledEvents(ctx, input.SeasonID)
		}
	}()
	go func() {
		defer wg.Done()
		input.Teams, teamsErr = database.ListTeams(ctx, input.SeasonID)
	}()
	go func() {
		defer wg.Done()
		input.Divisions, divisionsErr = database.ListDivisions(ctx)
	}()
	go func() {
		defer wg.Done()
		input.Configs, configsErr = database.ListDivisionConfigsBySeason(ctx, input.SeasonID)
	}()
	go func() {
		defer wg.Done()
		input.Fields, fieldsErr = database.ListSeasonFields(ctx, input.SeasonID)
	}()
	wg.Wait()

	for _, err := range []error{eventsErr, teamsErr, divisionsErr, configsErr, fieldsErr} {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch evaluation inputs: %w", err)
		}
	}

	if season != nil {
		// Merge config-declared recurring blackouts into the season's
		// own blackout dates before building the calendar.
		expanded, err := cfg.ExpandBlackouts(season.StartDate, season.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to expand recurring blackouts: %w", err)
		}
		season.BlackoutDates = append(season.BlackoutDates, expanded...)
		input.Calendar = evaluator.NewSeasonContext(*season)
	}

	return input, nil
}
