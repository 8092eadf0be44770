package evaluator

import (
	"sort"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// ReferenceIndex holds the keyed lookups every check needs. It is built
// once per evaluation from the flat reference collections and treated
// as read-only afterwards.
type ReferenceIndex struct {
	TeamsByID         map[string]model.Team
	TeamsByDivision   map[string][]model.Team
	DivisionsByID     map[string]model.Division
	ConfigsByDivision map[string]model.DivisionConfig
	FieldsByID        map[string]model.SeasonField
	PeriodsByID       map[string]model.SeasonPeriod
}

// NewReferenceIndex builds the lookup index from flat collections.
// Per-division team lists are sorted by team ID so downstream reports
// come out in a stable order.
func NewReferenceIndex(
	teams []model.Team,
	divisions []model.Division,
	configs []model.DivisionConfig,
	fields []model.SeasonField,
	periods []model.SeasonPeriod,
) *ReferenceIndex {
	idx := &ReferenceIndex{
		TeamsByID:         make(map[string]model.Team, len(teams)),
		TeamsByDivision:   make(map[string][]model.Team),
		DivisionsByID:     make(map[string]model.Division, len(divisions)),
		ConfigsByDivision: make(map[string]model.DivisionConfig, len(configs)),
		FieldsByID:        make(map[string]model.SeasonField, len(fields)),
		PeriodsByID:       make(map[string]model.SeasonPeriod, len(periods)),
	}

	for _, t := range teams {
		idx.TeamsByID[t.ID] = t
		idx.TeamsByDivision[t.DivisionID] = append(idx.TeamsByDivision[t.DivisionID], t)
	}
	for divID := range idx.TeamsByDivision {
		ts := idx.TeamsByDivision[divID]
		sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })
	}

	for _, d := range divisions {
		idx.DivisionsByID[d.ID] = d
	}
	for _, c := range configs {
		idx.ConfigsByDivision[c.DivisionID] = c
	}
	for _, f := range fields {
		idx.FieldsByID[f.FieldID] = f
	}
	for _, p := range periods {
		idx.PeriodsByID[p.ID] = p
	}

	return idx
}

// SortedTeams returns all teams sorted by ID
func (idx *ReferenceIndex) SortedTeams() []model.Team {
	teams := make([]model.Team, 0, len(idx.TeamsByID))
	for _, t := range idx.TeamsByID {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams
}

// SortedDivisions returns all divisions sorted by ID
func (idx *ReferenceIndex) SortedDivisions() []model.Division {
	divisions := make([]model.Division, 0, len(idx.DivisionsByID))
	for _, d := range idx.DivisionsByID {
		divisions = append(divisions, d)
	}
	sort.Slice(divisions, func(i, j int) bool { return divisions[i].ID < divisions[j].ID })
	return divisions
}

// TeamName resolves a team ID to its display name, degrading to a
// placeholder when the reference is missing.
func (idx *ReferenceIndex) TeamName(id string) string {
	if t, ok := idx.TeamsByID[id]; ok {
		return t.Name
	}
	return "Unknown Team"
}

// DivisionName resolves a division ID to its display name
func (idx *ReferenceIndex) DivisionName(id string) string {
	if d, ok := idx.DivisionsByID[id]; ok {
		return d.Name
	}
	return "Unknown Division"
}

// FieldName resolves a field ID to its display name
func (idx *ReferenceIndex) FieldName(id string) string {
	if f, ok := idx.FieldsByID[id]; ok {
		return f.FieldName
	}
	return "Unknown Field"
}
