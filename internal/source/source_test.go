package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathwaylabs/schoolscout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFallback is a mock implementation of FallbackLoader
type MockFallback struct {
	mock.Mock
}

func (m *MockFallback) Load() ([]domain.Institution, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Institution), args.Error(1)
}

func TestResolveRemoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"a","name":"Alpha"},{"id":"b","name":"Beta"}]}`))
	}))
	defer srv.Close()

	fallback := new(MockFallback)
	ds := New(NewClient(srv.URL, time.Second), fallback, nil)

	records, errMsg := ds.Resolve(context.Background())

	require.Len(t, records, 2)
	assert.Empty(t, errMsg)
	fallback.AssertNotCalled(t, "Load")
}

func TestResolveBareArraySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a","name":"Alpha"}]`))
	}))
	defer srv.Close()

	ds := New(NewClient(srv.URL, time.Second), new(MockFallback), nil)

	records, errMsg := ds.Resolve(context.Background())

	require.Len(t, records, 1)
	assert.Empty(t, errMsg)
}

func TestResolveMalformedShapeFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"not what you expected"}`))
	}))
	defer srv.Close()

	fallback := new(MockFallback)
	fallback.On("Load").Return([]domain.Institution{{ID: "fb", Name: "Bundled"}}, nil)

	ds := New(NewClient(srv.URL, time.Second), fallback, nil)

	records, errMsg := ds.Resolve(context.Background())

	require.Len(t, records, 1)
	assert.Equal(t, "fb", records[0].ID)
	assert.Equal(t, MsgDegraded, errMsg)
	fallback.AssertExpectations(t)
}

func TestResolveHTTPErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fallback := new(MockFallback)
	fallback.On("Load").Return([]domain.Institution{{ID: "fb", Name: "Bundled"}}, nil)

	ds := New(NewClient(srv.URL, time.Second), fallback, nil)

	records, errMsg := ds.Resolve(context.Background())

	require.Len(t, records, 1)
	assert.Equal(t, MsgDegraded, errMsg)
}

func TestResolveNetworkErrorFallsBack(t *testing.T) {
	// Closed server: the request fails at the transport level.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	fallback := new(MockFallback)
	fallback.On("Load").Return([]domain.Institution{{ID: "fb", Name: "Bundled"}}, nil)

	ds := New(NewClient(srv.URL, time.Second), fallback, nil)

	records, errMsg := ds.Resolve(context.Background())

	require.Len(t, records, 1)
	assert.Equal(t, MsgDegraded, errMsg)
}

func TestResolveDoubleFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	fallback := new(MockFallback)
	fallback.On("Load").Return(nil, domain.ErrFallbackUnusable)

	ds := New(NewClient(srv.URL, time.Second), fallback, nil)

	records, errMsg := ds.Resolve(context.Background())

	assert.Empty(t, records)
	assert.Equal(t, MsgLoadFailed, errMsg)
	fallback.AssertExpectations(t)
}

func TestBundledDatasetLoads(t *testing.T) {
	records, err := Bundled{}.Load()

	require.NoError(t, err)
	assert.NotEmpty(t, records)
	for _, rec := range records {
		assert.NoError(t, domain.ValidateInstitution(&rec))
	}
}
