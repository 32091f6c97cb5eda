package domain

import "fmt"

// Institution represents a single school-directory record.
// Ranking is a pointer because not every institution is ranked; an
// unranked institution is exempt from ranking-bound filters.
type Institution struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Location               string   `json:"location"`
	Type                   string   `json:"type"`
	EntryRequirements      []string `json:"entryRequirements"`
	CoursesOffered         []string `json:"coursesOffered"`
	CoCurricularActivities []string `json:"coCurricularActivities"`
	SpecialPrograms        []string `json:"specialPrograms"`
	Ranking                *int     `json:"ranking,omitempty"`
	Description            string   `json:"description,omitempty"`
	Website                string   `json:"website,omitempty"`
}

// ValidateInstitution validates an Institution instance
func ValidateInstitution(inst *Institution) error {
	if inst == nil {
		return fmt.Errorf("institution cannot be nil")
	}

	if inst.ID == "" {
		return fmt.Errorf("institution ID is required")
	}

	if inst.Name == "" {
		return fmt.Errorf("institution Name is required")
	}

	if inst.Ranking != nil && *inst.Ranking < 1 {
		return fmt.Errorf("institution Ranking must be positive when set")
	}

	return nil
}
