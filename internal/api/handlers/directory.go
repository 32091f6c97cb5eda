package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pathwaylabs/schoolscout/internal/api"
	"github.com/pathwaylabs/schoolscout/internal/directory"
	"github.com/pathwaylabs/schoolscout/internal/domain"
)

// DirectoryStore is the consumer-facing surface the handlers expose.
type DirectoryStore interface {
	View() directory.View
	SearchState() domain.SearchState
	SetQuery(q string)
	MergeFilters(patch domain.FilterPatch) error
	ResetFilters()
	ClearRankingBounds()
	Select(id string) (*domain.Institution, error)
	ClearSelection()
}

type DirectoryHandler struct {
	store DirectoryStore
}

func NewDirectoryHandler(store DirectoryStore) *DirectoryHandler {
	return &DirectoryHandler{store: store}
}

type SetQueryRequest struct {
	Query string `json:"query"`
}

// MergeFiltersRequest carries a partial filter specification. The
// clearRanking flag exists because a JSON null bound is
// indistinguishable from an absent one after decoding; dropping the
// bounds has to be asked for explicitly.
type MergeFiltersRequest struct {
	domain.FilterPatch
	ClearRanking bool `json:"clearRanking,omitempty"`
}

type SelectRequest struct {
	ID string `json:"id"`
}

// GetView returns the filtered institution list along with loading,
// error, selection and search state.
func (h *DirectoryHandler) GetView(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, h.store.View())
}

// GetSearchState returns the current search state.
func (h *DirectoryHandler) GetSearchState(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, h.store.SearchState())
}

// SetQuery replaces the free-text query.
func (h *DirectoryHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req SetQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.SetQuery(req.Query)
	api.Success(w, http.StatusOK, h.store.SearchState())
}

// MergeFilters shallow-merges the given dimensions into the filter
// specification; dimensions absent from the body are unchanged.
func (h *DirectoryHandler) MergeFilters(w http.ResponseWriter, r *http.Request) {
	var req MergeFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.MergeFilters(req.FilterPatch); err != nil {
		api.HandleError(w, err)
		return
	}

	if req.ClearRanking {
		h.store.ClearRankingBounds()
	}

	api.Success(w, http.StatusOK, h.store.SearchState())
}

// ResetFilters reinitializes the set-valued filter dimensions.
func (h *DirectoryHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.store.ResetFilters()
	api.Success(w, http.StatusOK, h.store.SearchState())
}

// Select marks an institution as the current selection.
func (h *DirectoryHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := h.store.Select(req.ID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.Success(w, http.StatusOK, inst)
}

// ClearSelection drops the current selection.
func (h *DirectoryHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.store.ClearSelection()
	api.Success(w, http.StatusOK, map[string]string{"status": "cleared"})
}
