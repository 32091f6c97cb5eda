package domain

// FilterSpec holds the active selection for every filter dimension.
// An empty (or nil) slice means the dimension is inactive and matches
// everything; a nil ranking bound means that bound is inactive.
type FilterSpec struct {
	Location               []string `json:"location"`
	Type                   []string `json:"type"`
	EntryRequirements      []string `json:"entryRequirements"`
	CoursesOffered         []string `json:"coursesOffered"`
	CoCurricularActivities []string `json:"coCurricularActivities"`
	SpecialPrograms        []string `json:"specialPrograms"`
	MinRanking             *int     `json:"minRanking,omitempty"`
	MaxRanking             *int     `json:"maxRanking,omitempty"`
}

// FilterPatch is a partial FilterSpec used for shallow merges. A nil
// field leaves that dimension untouched; a non-nil field replaces it
// wholesale (a pointer to an empty slice clears the dimension).
type FilterPatch struct {
	Location               *[]string `json:"location,omitempty"`
	Type                   *[]string `json:"type,omitempty"`
	EntryRequirements      *[]string `json:"entryRequirements,omitempty"`
	CoursesOffered         *[]string `json:"coursesOffered,omitempty"`
	CoCurricularActivities *[]string `json:"coCurricularActivities,omitempty"`
	SpecialPrograms        *[]string `json:"specialPrograms,omitempty"`
	MinRanking             *int      `json:"minRanking,omitempty"`
	MaxRanking             *int      `json:"maxRanking,omitempty"`
}

// SearchState is the single source of truth driving filtering: the
// free-text query plus the structured filter specification.
type SearchState struct {
	Query   string     `json:"query"`
	Filters FilterSpec `json:"filters"`
}

// SetQuery replaces the query and leaves the filters untouched.
func (s *SearchState) SetQuery(q string) {
	s.Query = q
}

// MergeFilters shallow-merges the patch into the current filter
// specification. Dimensions absent from the patch are unchanged.
func (s *SearchState) MergeFilters(patch FilterPatch) {
	if patch.Location != nil {
		s.Filters.Location = *patch.Location
	}
	if patch.Type != nil {
		s.Filters.Type = *patch.Type
	}
	if patch.EntryRequirements != nil {
		s.Filters.EntryRequirements = *patch.EntryRequirements
	}
	if patch.CoursesOffered != nil {
		s.Filters.CoursesOffered = *patch.CoursesOffered
	}
	if patch.CoCurricularActivities != nil {
		s.Filters.CoCurricularActivities = *patch.CoCurricularActivities
	}
	if patch.SpecialPrograms != nil {
		s.Filters.SpecialPrograms = *patch.SpecialPrograms
	}
	if patch.MinRanking != nil {
		s.Filters.MinRanking = patch.MinRanking
	}
	if patch.MaxRanking != nil {
		s.Filters.MaxRanking = patch.MaxRanking
	}
}

// ResetFilters reinitializes the six set-valued dimensions to empty.
// The ranking bounds are left as they are.
func (s *SearchState) ResetFilters() {
	s.Filters.Location = []string{}
	s.Filters.Type = []string{}
	s.Filters.EntryRequirements = []string{}
	s.Filters.CoursesOffered = []string{}
	s.Filters.CoCurricularActivities = []string{}
	s.Filters.SpecialPrograms = []string{}
}

// ClearRankingBounds deactivates both numeric bounds. ResetFilters
// deliberately does not call this; clearing bounds is a separate,
// explicit operation.
func (s *SearchState) ClearRankingBounds() {
	s.Filters.MinRanking = nil
	s.Filters.MaxRanking = nil
}
