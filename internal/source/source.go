package source

import (
	"context"

	"github.com/pathwaylabs/schoolscout/internal/domain"
	"github.com/pathwaylabs/schoolscout/internal/telemetry"
	"go.uber.org/zap"
)

// User-visible error text. The consumer only needs something to show,
// so degraded operation is reported as a message rather than a typed
// error code.
const (
	MsgDegraded   = "unable to reach the school directory service; showing bundled sample data"
	MsgLoadFailed = "failed to load school data"
)

// DataSource resolves the record list: remote endpoint first, bundled
// dataset on failure.
type DataSource struct {
	client   *Client
	fallback FallbackLoader
	logger   *zap.Logger
}

// New creates a DataSource. The fallback loader is injected rather
// than reached for lazily so the failure path is testable.
func New(client *Client, fallback FallbackLoader, logger *zap.Logger) *DataSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataSource{
		client:   client,
		fallback: fallback,
		logger:   logger,
	}
}

// Resolve fetches and normalizes the remote record list. On network,
// HTTP, or shape failure it loads the fallback dataset and returns it
// with a degraded-operation message. If the fallback itself fails the
// failure is logged and captured, never propagated: the caller gets an
// empty list and the load-failed message.
func (ds *DataSource) Resolve(ctx context.Context) ([]domain.Institution, string) {
	body, err := ds.client.Fetch(ctx)
	if err == nil {
		records, nerr := Normalize(body)
		if nerr == nil {
			return records, ""
		}
		err = nerr
	} else {
		err = domain.NewDomainErrorWithCause(domain.ErrCodeNetwork, "directory service request failed", err)
	}

	ds.logger.Warn("remote directory fetch failed, using bundled dataset",
		zap.String("endpoint", ds.client.endpoint),
		zap.Error(err),
	)

	records, ferr := ds.fallback.Load()
	if ferr != nil {
		ds.logger.Error("fallback dataset failed to load", zap.Error(ferr))
		telemetry.CaptureError(ctx, ferr)
		return nil, MsgLoadFailed
	}

	return records, MsgDegraded
}
