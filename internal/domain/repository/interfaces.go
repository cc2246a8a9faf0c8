package repository

import (
	"context"

	"SADE/internal/domain/models"
)

// SeriesSource returns the last n data points of a series, oldest first.
type SeriesSource interface {
	Series(ctx context.Context, id string, n int) ([]models.DataPoint, error)
}

// SnapshotStore persists the single consolidated snapshot.
type SnapshotStore interface {
	Fresh(ctx context.Context) (bool, error)
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

type Metrics interface {
	RecordCache(hit bool)
	RecordUpstream(series string, err error)
	RecordRefresh(seconds float64, err error)
}
