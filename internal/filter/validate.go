package filter

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pathwaylabs/schoolscout/internal/domain"
)

// singleton
var validate *validator.Validate

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// boundedPatch mirrors domain.FilterPatch for struct validation of the
// numeric bounds; the set dimensions accept arbitrary values.
type boundedPatch struct {
	MinRanking *int `json:"minRanking" validate:"omitempty,gte=1"`
	MaxRanking *int `json:"maxRanking" validate:"omitempty,gte=1"`
}

// ValidatePatch rejects patches whose ranking bounds cannot describe a
// valid range: bounds must be positive, and when both appear in the
// same patch min must not exceed max.
func ValidatePatch(patch domain.FilterPatch) error {
	if validate == nil {
		validate = newValidator()
	}

	bp := boundedPatch{MinRanking: patch.MinRanking, MaxRanking: patch.MaxRanking}
	if err := validate.Struct(bp); err != nil {
		errs := err.(validator.ValidationErrors)
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Field()+" must be at least "+e.Param())
		}
		return domain.NewDomainError(domain.ErrCodeValidation, strings.Join(msgs, " and "))
	}

	if patch.MinRanking != nil && patch.MaxRanking != nil && *patch.MinRanking > *patch.MaxRanking {
		return domain.ErrInvalidRankingSpan
	}

	return nil
}
