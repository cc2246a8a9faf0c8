package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"SADE/internal/domain/models"
	domrepo "SADE/internal/domain/repository"
	applogger "SADE/pkg/logger"
)

// ErrInvalidSeries marks upstream data that cannot produce a snapshot.
var ErrInvalidSeries = errors.New("invalid series data")

type seriesRequest struct {
	id string
	n  int
}

// Fetch order is fixed; a failure aborts the whole refresh.
var (
	dollarSeries    = seriesRequest{id: models.SeriesDollarFix, n: 2}
	rateSeries      = seriesRequest{id: models.SeriesTargetRate, n: 1}
	inflationSeries = seriesRequest{id: models.SeriesAnnualInflation, n: 1}
)

// IndicatorService serves the consolidated snapshot, refreshing it from the
// series source when the store reports it stale.
type IndicatorService struct {
	source  domrepo.SeriesSource
	store   domrepo.SnapshotStore
	metrics domrepo.Metrics
	logger  *applogger.Logger
	now     func() time.Time

	mu sync.Mutex
}

func NewIndicatorService(source domrepo.SeriesSource, store domrepo.SnapshotStore, metrics domrepo.Metrics, l *applogger.Logger) *IndicatorService {
	if l == nil {
		l = applogger.Nop()
	}
	return &IndicatorService{source: source, store: store, metrics: metrics, logger: l, now: time.Now}
}

// SetClock replaces time.Now for the snapshot date.
func (s *IndicatorService) SetClock(now func() time.Time) { s.now = now }

// Snapshot returns the stored document verbatim if fresh, otherwise fetches
// the three series, persists the new snapshot and returns the stored bytes.
// Nothing is persisted when any step fails. Callers are serialized, so a
// request that arrives during a refresh waits for it and then reads its
// result.
func (s *IndicatorService) Snapshot(ctx context.Context) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.cached(ctx); ok {
		s.record(func(m domrepo.Metrics) { m.RecordCache(true) })
		return doc, nil
	}
	s.record(func(m domrepo.Metrics) { m.RecordCache(false) })

	start := time.Now()
	snap, doc, err := s.refresh(ctx)
	s.record(func(m domrepo.Metrics) { m.RecordRefresh(time.Since(start).Seconds(), err) })
	if err != nil {
		return nil, err
	}

	s.logger.Info("snapshot refreshed",
		applogger.String("fecha", snap.FechaActualizacion),
		applogger.Strings("series", []string{dollarSeries.id, rateSeries.id, inflationSeries.id}),
		applogger.Duration("took_ms", time.Since(start)),
	)
	return doc, nil
}

// cached loads a fresh document. Unreadable or malformed contents count as a
// miss so the next refresh overwrites them.
func (s *IndicatorService) cached(ctx context.Context) (json.RawMessage, bool) {
	fresh, err := s.store.Fresh(ctx)
	if err != nil {
		s.logger.Warn("snapshot freshness check failed", applogger.Error(err))
		return nil, false
	}
	if !fresh {
		return nil, false
	}

	b, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("snapshot load failed", applogger.Error(err))
		return nil, false
	}
	if !json.Valid(b) {
		s.logger.Warn("snapshot corrupt, refetching", applogger.Int("bytes", len(b)))
		return nil, false
	}

	s.logger.Debug("snapshot cache hit", applogger.Int("bytes", len(b)))
	return json.RawMessage(b), true
}

func (s *IndicatorService) refresh(ctx context.Context) (models.Snapshot, json.RawMessage, error) {
	dollar, err := s.fetch(ctx, dollarSeries)
	if err != nil {
		return models.Snapshot{}, nil, err
	}
	rate, err := s.fetch(ctx, rateSeries)
	if err != nil {
		return models.Snapshot{}, nil, err
	}
	inflation, err := s.fetch(ctx, inflationSeries)
	if err != nil {
		return models.Snapshot{}, nil, err
	}

	if err := validate(dollar, rate, inflation); err != nil {
		return models.Snapshot{}, nil, err
	}

	snap := Assemble(s.now(), dollar, rate, inflation)

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return models.Snapshot{}, nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Save(ctx, b); err != nil {
		return models.Snapshot{}, nil, fmt.Errorf("save snapshot: %w", err)
	}
	return snap, b, nil
}

func (s *IndicatorService) fetch(ctx context.Context, r seriesRequest) ([]models.DataPoint, error) {
	points, err := s.source.Series(ctx, r.id, r.n)
	s.record(func(m domrepo.Metrics) { m.RecordUpstream(r.id, err) })
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", r.id, err)
	}
	return points, nil
}

// validate checks what Assemble computes with. Only the exchange rate is
// used numerically; rate and inflation values are shown as published.
func validate(dollar, rate, inflation []models.DataPoint) error {
	if len(dollar) < 2 || len(rate) < 1 || len(inflation) < 1 {
		return fmt.Errorf("%w: short series", ErrInvalidSeries)
	}
	for _, p := range dollar[len(dollar)-2:] {
		if !p.Numeric {
			return fmt.Errorf("%w: %s value %q at %s is not numeric", ErrInvalidSeries, models.SeriesDollarFix, p.Dato, p.Fecha)
		}
	}
	if dollar[len(dollar)-2].Value.IsZero() {
		return fmt.Errorf("%w: previous %s value is zero", ErrInvalidSeries, models.SeriesDollarFix)
	}
	return nil
}

func (s *IndicatorService) record(fn func(domrepo.Metrics)) {
	if s.metrics != nil {
		fn(s.metrics)
	}
}
