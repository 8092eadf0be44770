package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

func TestNewReferenceIndex_BuildsLookups(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, "Tigers", idx.TeamsByID["t1"].Name)
	assert.Equal(t, "Majors", idx.DivisionsByID["d1"].Name)
	assert.Equal(t, 1, idx.ConfigsByDivision["d1"].GamesPerWeek)
	assert.Equal(t, "Diamond 1", idx.FieldsByID["f1"].FieldName)
}

func TestNewReferenceIndex_TeamsByDivisionSorted(t *testing.T) {
	idx := NewReferenceIndex(
		[]model.Team{
			{ID: "t9", Name: "Last", DivisionID: "d1"},
			{ID: "t1", Name: "First", DivisionID: "d1"},
		},
		nil, nil, nil, nil,
	)

	teams := idx.TeamsByDivision["d1"]
	require.Len(t, teams, 2)
	assert.Equal(t, "t1", teams[0].ID)
	assert.Equal(t, "t9", teams[1].ID)
}

func TestReferenceIndex_UnknownReferencesDegradeToPlaceholders(t *testing.T) {
	idx := testIndex()

	assert.Equal(t, "Unknown Team", idx.TeamName("missing"))
	assert.Equal(t, "Unknown Division", idx.DivisionName("missing"))
	assert.Equal(t, "Unknown Field", idx.FieldName("missing"))
}

func TestReferenceIndex_SortedDivisions(t *testing.T) {
	idx := NewReferenceIndex(nil,
		[]model.Division{{ID: "d2"}, {ID: "d1"}},
		nil, nil, nil,
	)

	divisions := idx.SortedDivisions()
	require.Len(t, divisions, 2)
	assert.Equal(t, "d1", divisions[0].ID)
}
