package source

import (
	"bytes"
	"encoding/json"

	"github.com/pathwaylabs/schoolscout/internal/domain"
)

// wrappedPayload is the enveloped response shape.
type wrappedPayload struct {
	Data json.RawMessage `json:"data"`
}

// Normalize decodes a directory response body into institution
// records. Two shapes are accepted: an object wrapping the array
// under "data", or the bare array itself. Anything else yields a
// DATA_FORMAT_ERROR.
func Normalize(body []byte) ([]domain.Institution, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domain.ErrUnexpectedShape
	}

	var records []domain.Institution

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, domain.ErrUnexpectedShape
		}
	case '{':
		var wrapped wrappedPayload
		if err := json.Unmarshal(trimmed, &wrapped); err != nil || wrapped.Data == nil {
			return nil, domain.ErrUnexpectedShape
		}
		inner := bytes.TrimSpace(wrapped.Data)
		if len(inner) == 0 || inner[0] != '[' {
			return nil, domain.ErrUnexpectedShape
		}
		if err := json.Unmarshal(inner, &records); err != nil {
			return nil, domain.ErrUnexpectedShape
		}
	default:
		return nil, domain.ErrUnexpectedShape
	}

	if records == nil {
		records = []domain.Institution{}
	}
	return records, nil
}
