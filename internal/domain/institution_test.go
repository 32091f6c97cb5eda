package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInstitution(t *testing.T) {
	ranking := 12
	valid := &Institution{
		ID:       "inst-1",
		Name:     "Northgate Academy",
		Location: "CityA",
		Type:     "Public",
		Ranking:  &ranking,
	}
	assert.NoError(t, ValidateInstitution(valid))
}

func TestValidateInstitutionNil(t *testing.T) {
	err := ValidateInstitution(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestValidateInstitutionMissingFields(t *testing.T) {
	err := ValidateInstitution(&Institution{Name: "No ID"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ID is required")

	err = ValidateInstitution(&Institution{ID: "inst-2"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
}

func TestValidateInstitutionBadRanking(t *testing.T) {
	ranking := 0
	err := ValidateInstitution(&Institution{
		ID:      "inst-3",
		Name:    "Zero Rank",
		Ranking: &ranking,
	})
	assert.Error(t, err)
}

func TestValidateInstitutionUnrankedIsValid(t *testing.T) {
	assert.NoError(t, ValidateInstitution(&Institution{
		ID:   "inst-4",
		Name: "Unranked Prep",
	}))
}
