package source

import (
	"encoding/json"

	"github.com/pathwaylabs/schoolscout/internal/domain"

	_ "embed"
)

//go:embed fallback.json
var fallbackJSON []byte

// FallbackLoader supplies the static dataset used when the remote
// fetch fails. It is an explicit dependency of the store so tests can
// substitute their own implementation.
type FallbackLoader interface {
	Load() ([]domain.Institution, error)
}

// Bundled serves the dataset compiled into the binary.
type Bundled struct{}

// Load decodes the embedded dataset.
func (Bundled) Load() ([]domain.Institution, error) {
	var records []domain.Institution
	if err := json.Unmarshal(fallbackJSON, &records); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeFallbackLoad, "bundled fallback dataset failed to load", err)
	}
	return records, nil
}
