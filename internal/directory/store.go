// Package directory holds the institution record list and the search
// state driving the filtered view handed to consumers.
package directory

import (
	"context"
	"sync"

	"github.com/pathwaylabs/schoolscout/internal/domain"
	"github.com/pathwaylabs/schoolscout/internal/filter"
	"github.com/pathwaylabs/schoolscout/internal/source"
	"go.uber.org/zap"
)

// View is the consumer-facing snapshot: the filtered record list plus
// the flags the rendering layer needs.
type View struct {
	Institutions []domain.Institution `json:"institutions"`
	Loading      bool                 `json:"loading"`
	Error        string               `json:"error,omitempty"`
	Selected     *domain.Institution  `json:"selected,omitempty"`
	Search       domain.SearchState   `json:"search"`
}

// Store owns the record list, search state and selection. The record
// list is populated exactly once per Store lifecycle by Activate; the
// search state changes only through the mutator methods.
type Store struct {
	ds     *source.DataSource
	logger *zap.Logger

	activateOnce sync.Once

	mu       sync.RWMutex
	records  []domain.Institution
	loading  bool
	errMsg   string
	state    domain.SearchState
	selected *domain.Institution
}

// NewStore creates an empty Store around the given data source.
func NewStore(ds *source.DataSource, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		ds:     ds,
		logger: logger,
	}
}

// Activate starts the single asynchronous fetch. Further calls are
// no-ops: the fetch is never retried or re-issued, and there is no
// cancellation beyond the passed context.
func (s *Store) Activate(ctx context.Context) {
	s.activateOnce.Do(func() {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()

		go func() {
			records, errMsg := s.ds.Resolve(ctx)

			s.mu.Lock()
			if records != nil {
				s.records = records
			}
			s.errMsg = errMsg
			s.loading = false
			s.mu.Unlock()

			s.logger.Info("directory activated",
				zap.Int("records", len(records)),
				zap.Bool("degraded", errMsg != ""),
			)
		}()
	})
}

// View returns the current consumer snapshot. Filtering is recomputed
// here, on every read, from the unmodified record list.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Institutions: filter.Apply(s.records, s.state),
		Loading:      s.loading,
		Error:        s.errMsg,
		Selected:     s.selected,
		Search:       s.state,
	}
}

// SearchState returns the current search state.
func (s *Store) SearchState() domain.SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetQuery replaces the free-text query.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetQuery(q)
}

// MergeFilters shallow-merges the patch into the filter specification.
func (s *Store) MergeFilters(patch domain.FilterPatch) error {
	if err := filter.ValidatePatch(patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MergeFilters(patch)
	return nil
}

// ResetFilters reinitializes the set-valued dimensions.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ResetFilters()
}

// ClearRankingBounds deactivates both numeric bounds.
func (s *Store) ClearRankingBounds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ClearRankingBounds()
}

// Select marks the institution with the given id as selected.
func (s *Store) Select(id string) (*domain.Institution, error) {
	if id == "" {
		return nil, domain.ErrEmptyInstitutionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			inst := s.records[i]
			s.selected = &inst
			return &inst, nil
		}
	}
	return nil, domain.ErrInstitutionNotFound
}

// ClearSelection drops the current selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}
