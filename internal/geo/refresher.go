package geo

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
)

// CitySource fetches the full serviceable city list from the carrier.
type CitySource interface {
	ListCities(ctx context.Context) ([]entities.CityReference, error)
}

// Resolver serves city resolutions against the most recent snapshot and
// refreshes it in the background. A failed refresh keeps the previous
// snapshot; until the first successful fetch every input is unresolved.
type Resolver struct {
	logger   *slog.Logger
	source   CitySource
	interval time.Duration
	snap     atomic.Pointer[Snapshot]
}

func NewResolver(logger *slog.Logger, source CitySource, interval time.Duration) *Resolver {
	return &Resolver{
		logger:   logger.With(slog.String("component", "geo_resolver")),
		source:   source,
		interval: interval,
	}
}

func (r *Resolver) Resolve(city, address string) Resolution {
	snap := r.snap.Load()
	if snap == nil {
		return unresolved(city)
	}
	return snap.Resolve(city, address)
}

// Start performs the initial fetch and launches the periodic refresh loop.
// The initial fetch is allowed to fail: orders must keep flowing when the
// carrier is down, they just land unresolved.
func (r *Resolver) Start(ctx context.Context) error {
	r.refresh(ctx)

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.refresh(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (r *Resolver) refresh(ctx context.Context) {
	cities, err := r.source.ListCities(ctx)
	if err != nil {
		r.logger.Error("failed to refresh city reference set", slog.Any("error", err))
		return
	}

	r.snap.Store(NewSnapshot(cities))
	r.logger.Info("city reference set refreshed", slog.Int("cities", len(cities)))
}
