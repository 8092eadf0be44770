package db

import (
	"context"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// Database defines the data access surface the evaluation engine
// consumes. The postgres package provides the production implementation;
// tests supply fakes.
type Database interface {
	ListScheduledEvents(ctx context.Context, seasonID string) ([]model.ScheduledEvent, error)
	ListScheduledEventsByPeriods(ctx context.Context, periodIDs []string) ([]model.ScheduledEvent, error)
	GetSeasonByID(ctx context.Context, id string) (*model.Season, error)
	GetSeasonPeriodsByIDs(ctx context.Context, ids []string) ([]model.SeasonPeriod, error)
	ListTeams(ctx context.Context, seasonID string) ([]model.Team, error)
	ListDivisions(ctx context.Context) ([]model.Division, error)
	ListDivisionConfigsBySeason(ctx context.Context, seasonID string) ([]model.DivisionConfig, error)
	ListSeasonFields(ctx context.Context, seasonID string) ([]model.SeasonField, error)

	InsertEvaluation(ctx context.Context, record EvaluationRecord) error
	GetEvaluations(ctx context.Context, seasonID string) ([]EvaluationRecord, error)
}
