package filter

import (
	"testing"

	"github.com/pathwaylabs/schoolscout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func sampleRecords() []domain.Institution {
	return []domain.Institution{
		{
			ID:                     "inst-1",
			Name:                   "mit sloan",
			Location:               "CityA",
			Type:                   "Private",
			EntryRequirements:      []string{"SAT", "Essay"},
			CoursesOffered:         []string{"Business", "Finance"},
			CoCurricularActivities: []string{"Debate"},
			SpecialPrograms:        []string{"Exchange"},
			Ranking:                intPtr(3),
		},
		{
			ID:                     "inst-2",
			Name:                   "Northgate Academy",
			Location:               "CityB",
			Type:                   "Public",
			EntryRequirements:      []string{"Interview"},
			CoursesOffered:         []string{"Engineering", "Science"},
			CoCurricularActivities: []string{"Robotics", "Chess"},
			SpecialPrograms:        []string{"Honors"},
			Ranking:                intPtr(42),
		},
		{
			ID:                "inst-3",
			Name:              "Riverside College",
			Location:          "CityA",
			Type:              "Public",
			EntryRequirements: []string{"SAT"},
			CoursesOffered:    []string{"Arts"},
			// no ranking: exempt from ranking bounds
		},
	}
}

func TestApplyIdentityWhenEverythingInactive(t *testing.T) {
	records := sampleRecords()

	got := Apply(records, domain.SearchState{})

	assert.Equal(t, records, got)
}

func TestApplyQueryCaseInsensitiveSubstring(t *testing.T) {
	records := sampleRecords()

	got := Apply(records, domain.SearchState{Query: "MIT"})

	require.Len(t, got, 1)
	assert.Equal(t, "mit sloan", got[0].Name)
}

func TestApplyQueryNoMatch(t *testing.T) {
	got := Apply(sampleRecords(), domain.SearchState{Query: "zzz"})
	assert.Empty(t, got)
}

func TestApplySingleValuedDimensionMembership(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{Location: []string{"CityA"}},
	}

	got := Apply(sampleRecords(), state)

	require.Len(t, got, 2)
	for _, rec := range got {
		assert.Equal(t, "CityA", rec.Location)
	}
}

func TestApplyTagDimensionMatchAny(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{
			CoursesOffered: []string{"Finance", "Science"},
		},
	}

	got := Apply(sampleRecords(), state)

	require.Len(t, got, 2)
	assert.Equal(t, "inst-1", got[0].ID)
	assert.Equal(t, "inst-2", got[1].ID)
}

func TestApplyExcludesOnEmptyIntersection(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{
			CoCurricularActivities: []string{"Swimming"},
		},
	}

	got := Apply(sampleRecords(), state)

	assert.Empty(t, got)
}

func TestApplyDimensionsCombineWithAnd(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{
			Location: []string{"CityA"},
			Type:     []string{"Public"},
		},
	}

	got := Apply(sampleRecords(), state)

	require.Len(t, got, 1)
	assert.Equal(t, "inst-3", got[0].ID)
}

func TestApplyRankingBoundsInclusive(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{
			MinRanking: intPtr(3),
			MaxRanking: intPtr(42),
		},
	}

	got := Apply(sampleRecords(), state)

	// inst-1 and inst-2 sit on the bounds; inst-3 is unranked and exempt.
	assert.Len(t, got, 3)
}

func TestApplyRankingBoundsExclude(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{MaxRanking: intPtr(10)},
	}

	got := Apply(sampleRecords(), state)

	require.Len(t, got, 2)
	assert.Equal(t, "inst-1", got[0].ID)
	assert.Equal(t, "inst-3", got[1].ID, "unranked record is never excluded by bounds")
}

func TestApplyUnrankedExemptFromBothBounds(t *testing.T) {
	state := domain.SearchState{
		Filters: domain.FilterSpec{
			MinRanking: intPtr(1000),
			MaxRanking: intPtr(2000),
		},
	}

	got := Apply(sampleRecords(), state)

	require.Len(t, got, 1)
	assert.Nil(t, got[0].Ranking)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	want := sampleRecords()

	Apply(records, domain.SearchState{
		Query:   "academy",
		Filters: domain.FilterSpec{Location: []string{"CityB"}},
	})

	assert.Equal(t, want, records)
}

func TestResetThenQueryEquivalentToFreshQuery(t *testing.T) {
	records := sampleRecords()

	dirty := domain.SearchState{
		Filters: domain.FilterSpec{
			Location:        []string{"CityB"},
			SpecialPrograms: []string{"Honors"},
		},
	}
	dirty.ResetFilters()
	dirty.SetQuery("college")

	fresh := domain.SearchState{Query: "college"}

	assert.Equal(t, Apply(records, fresh), Apply(records, dirty))
}

func TestApplyEmptyRecordList(t *testing.T) {
	got := Apply(nil, domain.SearchState{Query: "mit"})
	assert.Empty(t, got)
}
