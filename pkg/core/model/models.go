package model

import "time"

type EventType string

const (
	EventGame     EventType = "game"
	EventPractice EventType = "practice"
	EventCage     EventType = "cage"
)

func (e EventType) IsValid() bool {
	return e == EventGame || e == EventPractice || e == EventCage
}

// DayPriority is the scheduling priority of a day-of-week preference
type DayPriority string

const (
	PriorityRequired   DayPriority = "required"
	PriorityPreferred  DayPriority = "preferred"
	PriorityAcceptable DayPriority = "acceptable"
	PriorityAvoid      DayPriority = "avoid"
)

func (p DayPriority) IsValid() bool {
	return p == PriorityRequired || p == PriorityPreferred || p == PriorityAcceptable || p == PriorityAvoid
}

// ScheduledEvent represents a single scheduled game, practice or cage session.
// Games carry HomeTeamID/AwayTeamID; practices and cage sessions carry TeamID.
type ScheduledEvent struct {
	ID             string
	EventType      EventType
	Date           time.Time // calendar day, midnight UTC
	StartTime      string    // "HH:MM" local clock
	EndTime        string    // "HH:MM", after StartTime
	DivisionID     string
	TeamID         string // practices and cage sessions
	HomeTeamID     string // games
	AwayTeamID     string // games
	FieldID        string // empty for cage sessions
	CageID         string // empty for field events
	SeasonPeriodID string // empty in season-milestone mode
}

// IsFieldEvent reports whether the event occupies a field (games and
// practices) rather than a batting cage.
func (e ScheduledEvent) IsFieldEvent() bool {
	return e.EventType != EventCage
}

// InvolvesTeam reports whether the event belongs to the given team,
// either directly or as one side of a game.
func (e ScheduledEvent) InvolvesTeam(teamID string) bool {
	return e.TeamID == teamID || e.HomeTeamID == teamID || e.AwayTeamID == teamID
}

// Team represents a team within a division
type Team struct {
	ID         string
	Name       string
	DivisionID string
}

// Division represents an age/skill division owning many teams
type Division struct {
	ID   string
	Name string
}

// GameDayPreference expresses how strongly a division wants (or wants to
// avoid) games on a given day of the week.
type GameDayPreference struct {
	DayOfWeek      int // 0=Sunday .. 6=Saturday
	Priority       DayPriority
	MaxGamesPerDay int // 0 means no limit
}

// GameWeekOverride replaces the base games-per-week quota for one game week
type GameWeekOverride struct {
	WeekNumber   int // 1-based, relative to the first game week
	GamesPerWeek int
}

// DivisionConfig is the active scheduling policy for a division in a season
type DivisionConfig struct {
	DivisionID           string
	SeasonID             string
	GamesPerWeek         int
	PracticesPerWeek     int
	CageSessionsPerWeek  int
	MinConsecutiveDayGap int
	MaxGamesPerSeason    int // 0 means no season-wide cap
	GameDayPreferences   []GameDayPreference
	GameWeekOverrides    []GameWeekOverride
	GameSpacingEnabled   bool
}

// Season represents a season's date milestones
type Season struct {
	ID             string
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	GamesStartDate time.Time // zero value means games start with the season
	BlackoutDates  []time.Time
}

// EffectiveGamesStart returns the date games may begin: GamesStartDate
// when set, otherwise StartDate.
func (s Season) EffectiveGamesStart() time.Time {
	if s.GamesStartDate.IsZero() {
		return s.StartDate
	}
	return s.GamesStartDate
}

// SeasonPeriod is an explicitly named slice of a season with its own set
// of allowed event types. Periods are an alternative to season milestones.
type SeasonPeriod struct {
	ID           string
	SeasonID     string
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	EventTypes   []EventType
	AutoSchedule bool
}

// Allows reports whether the period permits the given event type
func (p SeasonPeriod) Allows(t EventType) bool {
	for _, et := range p.EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// SeasonField is a field available to a season, with its display name
// denormalized for reporting.
type SeasonField struct {
	FieldID   string
	FieldName string
}
