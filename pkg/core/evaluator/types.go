package evaluator

import (
	"time"

	"github.com/bbaldino/ll-scheduler/pkg/core/calendar"
	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// CheckResult is the common header every check report carries
type CheckResult struct {
	Passed  bool
	Score   int // 0-100
	Summary string
}

// Severity classifies a constraint violation. Errors fail the check,
// warnings do not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ViolationType identifies the rule a constraint violation breaks
type ViolationType string

const (
	ViolationSameDayConflict  ViolationType = "same_day_conflict"
	ViolationMinDayGap        ViolationType = "min_day_gap"
	ViolationResourceConflict ViolationType = "resource_conflict"
	ViolationInvalidEventType ViolationType = "invalid_event_type_for_period"
	ViolationBlackoutDate     ViolationType = "blackout_date"
)

// Violation is a single constraint finding. Violations are data, not
// errors: a schedule full of them still evaluates successfully.
type Violation struct {
	Type        ViolationType
	Severity    Severity
	Date        time.Time
	TeamID      string
	EventIDs    []string
	Description string
}

// WeekLine is one week of a team's required-vs-scheduled table
type WeekLine struct {
	WeekStart          time.Time
	WeekEnd            time.Time
	GameWeekNumber     int // 0 when the week is outside the game-week span
	RequiredGames      int
	ScheduledGames     int
	RequiredPractices  int
	ScheduledPractices int
	RequiredCage       int
	ScheduledCage      int
	Passed             bool
}

// TeamWeeklyBreakdown is a team's full per-week requirements table
type TeamWeeklyBreakdown struct {
	TeamID     string
	TeamName   string
	DivisionID string
	Weeks      []WeekLine
	Passed     bool
}

// WeeklyRequirementsReport is the output of the weekly requirements check
type WeeklyRequirementsReport struct {
	CheckResult
	Teams []TeamWeeklyBreakdown
}

// TeamHomeAway is one team's home/away split
type TeamHomeAway struct {
	TeamID   string
	TeamName string
	Home     int
	Away     int
	Balance  int
	Passed   bool
}

// HomeAwayReport is the output of the home/away balance check
type HomeAwayReport struct {
	CheckResult
	Teams []TeamHomeAway
}

// ConstraintViolationsReport is the output of the constraint check
type ConstraintViolationsReport struct {
	CheckResult
	Violations   []Violation
	ErrorCount   int
	WarningCount int
}

// TeamDayCounts is a team's games bucketed by day of week (0=Sunday)
type TeamDayCounts struct {
	TeamID    string
	TeamName  string
	DayCounts [7]int
}

// DivisionDayPreferences is one division's game-day preference audit
type DivisionDayPreferences struct {
	DivisionID     string
	DivisionName   string
	DayCounts      [7]int
	TeamCounts     []TeamDayCounts
	Issues         []string
	ComplianceRate int
	Passed         bool
}

// GameDayPreferencesReport is the output of the game day preference check
type GameDayPreferencesReport struct {
	CheckResult
	Divisions []DivisionDayPreferences
}

// TeamSpacing holds one team's consecutive-game gap statistics
type TeamSpacing struct {
	TeamID     string
	TeamName   string
	GameCount  int
	Gaps       []int
	AverageGap float64
	MinGap     int
	MaxGap     int
	Deviation  float64 // |team average - division average|
	Passed     bool
}

// DivisionSpacing holds a division's spacing fairness baseline
type DivisionSpacing struct {
	DivisionID   string
	DivisionName string
	AverageGap   float64 // mean of per-team averages
	Skipped      bool    // division opted out via GameSpacingEnabled=false
	Teams        []TeamSpacing
}

// GameSpacingReport is the output of the game spacing check
type GameSpacingReport struct {
	CheckResult
	Divisions []DivisionSpacing
}

// MatchupPair is the actual game count between one pair of teams
type MatchupPair struct {
	TeamAID     string
	TeamBID     string
	TeamAName   string
	TeamBName   string
	GamesPlayed int
	AHomeCount  int
	BHomeCount  int
	Imbalance   float64 // |GamesPlayed - ideal|
}

// DivisionMatchupBalance holds a division's matchup fairness audit
type DivisionMatchupBalance struct {
	DivisionID           string
	DivisionName         string
	IdealGamesPerMatchup float64
	MaxImbalance         float64
	Pairs                []MatchupPair
	Passed               bool
}

// MatchupBalanceReport is the output of the matchup balance check
type MatchupBalanceReport struct {
	CheckResult
	Divisions []DivisionMatchupBalance
}

// DivisionMatchupSpacing holds a division's pairwise rematch-gap matrix.
// Matrix[i][j] lists the day gaps between consecutive games of
// TeamIDs[i] vs TeamIDs[j]; the matrix is symmetric.
type DivisionMatchupSpacing struct {
	DivisionID   string
	DivisionName string
	TeamIDs      []string
	Matrix       [][][]int
	MinSpacing   int // smallest gap observed; -1 when no rematches exist
	Passed       bool
}

// MatchupSpacingReport is the output of the matchup spacing check
type MatchupSpacingReport struct {
	CheckResult
	Divisions []DivisionMatchupSpacing
}

// IsolatedGame is a game sharing its date with no overlapping game
type IsolatedGame struct {
	EventID      string
	Date         time.Time
	StartTime    string
	EndTime      string
	FieldName    string
	DivisionName string
	HomeTeamName string
	AwayTeamName string
}

// SlotEfficiencyReport is the output of the game slot efficiency check
type SlotEfficiencyReport struct {
	CheckResult
	TotalGames      int
	ConcurrentGames int
	IsolatedGames   []IsolatedGame
	EfficiencyRate  int
}

// TeamPracticeSpacing holds one team's practice gap statistics
type TeamPracticeSpacing struct {
	TeamID          string
	TeamName        string
	PracticeCount   int
	BackToBackCount int
	MaxGap          int
	ExcessiveGap    bool // max gap over seven days
}

// DivisionPracticeSpacing compares back-to-back counts inside a division
type DivisionPracticeSpacing struct {
	DivisionID    string
	DivisionName  string
	MinBackToBack int
	MaxBackToBack int
	Imbalanced    bool // (max - min) > allowed range
	Teams         []TeamPracticeSpacing
}

// PracticeSpacingReport is the output of the practice spacing check
type PracticeSpacingReport struct {
	CheckResult
	Divisions []DivisionPracticeSpacing
}

// ScheduleEvaluationResult is the composite report for one evaluation run
type ScheduleEvaluationResult struct {
	ID           string
	SeasonID     string
	GeneratedAt  time.Time
	OverallScore int

	WeeklyRequirements   WeeklyRequirementsReport
	HomeAwayBalance      HomeAwayReport
	ConstraintViolations ConstraintViolationsReport
	GameDayPreferences   GameDayPreferencesReport
	GameSpacing          GameSpacingReport
	MatchupBalance       MatchupBalanceReport
	MatchupSpacing       MatchupSpacingReport
	SlotEfficiency       SlotEfficiencyReport
	PracticeSpacing      PracticeSpacingReport
}

// CalendarContext is the immutable calendar view shared by every check:
// the full week enumeration, the numbered game weeks, the eligibility
// strategy, and the blackout day set.
type CalendarContext struct {
	Weeks       []calendar.Week
	GameWeeks   []calendar.Week
	Eligibility calendar.WeekEligibility
	Blackouts   map[time.Time]bool
}

// GameWeekNumber returns the 1-based game week number for the week
// starting at weekStart, or 0 when the week is outside the game span.
func (c *CalendarContext) GameWeekNumber(weekStart time.Time) int {
	for _, gw := range c.GameWeeks {
		if gw.Start.Equal(weekStart) {
			return gw.Number
		}
	}
	return 0
}

// NewSeasonContext builds the calendar context for season-milestone mode
func NewSeasonContext(season model.Season) *CalendarContext {
	blackouts := make(map[time.Time]bool)
	for _, d := range season.BlackoutDates {
		blackouts[calendar.Day(d)] = true
	}

	return &CalendarContext{
		Weeks:       calendar.EnumerateWeeks(season.StartDate, season.EndDate),
		GameWeeks:   calendar.EnumerateGameWeeks(season),
		Eligibility: calendar.SeasonMilestones{Season: season},
		Blackouts:   blackouts,
	}
}

// NewPeriodContext builds the calendar context for explicit-period mode.
// Game weeks are anchored at the earliest period permitting games.
func NewPeriodContext(periods []model.SeasonPeriod) *CalendarContext {
	cal := calendar.PeriodCalendar{Periods: periods}

	ctx := &CalendarContext{
		Eligibility: cal,
		Blackouts:   make(map[time.Time]bool),
	}

	start, end, ok := cal.Span()
	if !ok {
		return ctx
	}
	ctx.Weeks = calendar.EnumerateWeeks(start, end)

	var gamesStart time.Time
	for _, p := range periods {
		if !p.Allows(model.EventGame) {
			continue
		}
		if gamesStart.IsZero() || calendar.Day(p.StartDate).Before(gamesStart) {
			gamesStart = calendar.Day(p.StartDate)
		}
	}
	if !gamesStart.IsZero() {
		gameWeeks := calendar.EnumerateWeeks(gamesStart, end)
		for i := range gameWeeks {
			gameWeeks[i].Number = i + 1
		}
		ctx.GameWeeks = gameWeeks
	}

	return ctx
}
