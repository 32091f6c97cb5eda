// Package filter narrows institution lists against a search state.
// It is pure: it never mutates its inputs and performs no I/O, so it
// can be recomputed on every state change.
package filter

import (
	"strings"

	"github.com/pathwaylabs/schoolscout/internal/domain"
)

// Apply returns the institutions matching every active criterion of
// the search state. Criteria combine with AND across dimensions and
// OR within a dimension; inactive dimensions (empty sets, nil bounds,
// empty query) match everything.
func Apply(records []domain.Institution, state domain.SearchState) []domain.Institution {
	out := make([]domain.Institution, 0, len(records))
	for _, rec := range records {
		if Matches(rec, state) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a single institution passes the search state.
func Matches(rec domain.Institution, state domain.SearchState) bool {
	if state.Query != "" {
		if !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(state.Query)) {
			return false
		}
	}

	f := state.Filters

	if !memberOf(rec.Location, f.Location) {
		return false
	}
	if !memberOf(rec.Type, f.Type) {
		return false
	}

	if !matchesAny(rec.EntryRequirements, f.EntryRequirements) {
		return false
	}
	if !matchesAny(rec.CoursesOffered, f.CoursesOffered) {
		return false
	}
	if !matchesAny(rec.CoCurricularActivities, f.CoCurricularActivities) {
		return false
	}
	if !matchesAny(rec.SpecialPrograms, f.SpecialPrograms) {
		return false
	}

	// Unranked institutions are exempt from both bounds.
	if rec.Ranking != nil {
		if f.MinRanking != nil && *rec.Ranking < *f.MinRanking {
			return false
		}
		if f.MaxRanking != nil && *rec.Ranking > *f.MaxRanking {
			return false
		}
	}

	return true
}

// memberOf checks a single-valued dimension: an empty allowed set is
// inactive, otherwise the value must be one of the allowed values.
func memberOf(value string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// matchesAny checks a multi-valued dimension: an empty allowed set is
// inactive, otherwise at least one of the record's tags must be allowed.
func matchesAny(tags, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, tag := range tags {
		for _, a := range allowed {
			if tag == a {
				return true
			}
		}
	}
	return false
}
