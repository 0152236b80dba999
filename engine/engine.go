package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/osrmkit/osrmkit/config"
	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/internal/localgraph"
	"github.com/osrmkit/osrmkit/params"
	"github.com/osrmkit/osrmkit/response"
)

// Engine is a live routing engine handle. It owns the loaded dataset
// and the config snapshot it was built from.
type Engine struct {
	backend QueryBackend
	snap    *config.Snapshot
	log     *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// New finalizes the config draft and loads its dataset, returning a
// live engine handle. The config is consumed: further use of it fails
// with AlreadyConsumed.
func New(cfg *config.Config) (*Engine, error) {
	snap, err := cfg.Finalize()
	if err != nil {
		return nil, err
	}
	backend, err := localgraph.Open(snap)
	if err != nil {
		return nil, err
	}
	return newEngine(snap, backend), nil
}

// NewWithBackend finalizes the config draft and binds the engine to the
// given backend instead of loading a dataset.
func NewWithBackend(cfg *config.Config, backend QueryBackend) (*Engine, error) {
	snap, err := cfg.Finalize()
	if err != nil {
		return nil, err
	}
	return newEngine(snap, backend), nil
}

func newEngine(snap *config.Snapshot, backend QueryBackend) *Engine {
	e := &Engine{
		backend: backend,
		snap:    snap,
		log:     verbosityLogger(snap.Verbosity),
	}
	e.log.Info("engine ready",
		zap.String("base_path", snap.BasePath),
		zap.String("algorithm", string(backend.Algorithm())),
		zap.Bool("mmap", snap.UseMmap),
		zap.Bool("shared_memory", snap.UseSharedMemory))
	return e
}

// Algorithm reports the route-search algorithm the engine runs.
func (e *Engine) Algorithm() config.Algorithm {
	return e.backend.Algorithm()
}

// Config returns the snapshot the engine was built from.
func (e *Engine) Config() *config.Snapshot {
	return e.snap
}

// Close releases the dataset. Closing twice, or querying a closed
// engine, fails with AlreadyClosed.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errors.AlreadyClosed("engine")
	}
	e.closed = true
	if err := e.backend.Close(); err != nil {
		return errors.Internal(err, "release dataset")
	}
	e.log.Info("engine closed")
	return nil
}

// guard acquires the read side of the handle for the duration of one
// query. The returned release func must be called exactly once.
func (e *Engine) guard() (func(), error) {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return nil, errors.AlreadyClosed("engine")
	}
	return e.mu.RUnlock, nil
}

// limited reports whether n exceeds a configured limit. -1 disables the
// limit.
func limited(limit, n int) bool {
	return limit >= 0 && n > limit
}

func checkWaypoints(waypoints []int, coords int) error {
	for _, w := range waypoints {
		if w >= coords {
			return errors.Newf(errors.CodeInvalidQuery, "waypoint index %d out of range for %d coordinates", w, coords)
		}
	}
	return nil
}

// backendErr maps a backend failure onto the error protocol. Errors the
// backend already classified pass through; anything else is internal.
func backendErr(err error) error {
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.Internal(err, "query execution")
}

func (e *Engine) queryLog(service string) (*zap.Logger, time.Time) {
	log := e.log
	if log.Core().Enabled(zap.DebugLevel) {
		log = log.With(zap.String("query_id", uuid.NewString()), zap.String("service", service))
		log.Debug("query start")
	}
	return log, time.Now()
}

// Route computes the fastest path visiting the coordinates in order.
func (e *Engine) Route(ctx context.Context, p *params.Route) (*response.Route, error) {
	release, err := e.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	coords := len(p.Coordinates())
	if coords < 2 {
		return nil, errors.Newf(errors.CodeInvalidQuery, "route needs at least 2 coordinates, got %d", coords)
	}
	if limited(e.snap.MaxLocationsViaroute, coords) {
		return nil, errors.Newf(errors.CodeTooManyLocations, "%d coordinates exceed the configured limit of %d", coords, e.snap.MaxLocationsViaroute)
	}
	if limited(e.snap.MaxAlternatives, p.NumberOfAlternatives()) {
		return nil, errors.Newf(errors.CodeTooManyLocations, "%d alternatives exceed the configured limit of %d", p.NumberOfAlternatives(), e.snap.MaxAlternatives)
	}
	if err := checkWaypoints(p.Waypoints(), coords); err != nil {
		return nil, err
	}

	log, start := e.queryLog("route")
	data, err := e.backend.Route(ctx, p)
	if err != nil {
		return nil, backendErr(err)
	}
	log.Debug("query done", zap.Duration("elapsed", time.Since(start)))
	return response.NewRoute(data)
}

// Table computes a duration/distance matrix between coordinate subsets.
func (e *Engine) Table(ctx context.Context, p *params.Table) (*response.Table, error) {
	release, err := e.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	coords := len(p.Coordinates())
	if coords < 1 {
		return nil, errors.New(errors.CodeInvalidQuery, "table needs at least 1 coordinate")
	}
	if limited(e.snap.MaxLocationsDistanceTable, coords) {
		return nil, errors.Newf(errors.CodeTooManyLocations, "%d coordinates exceed the configured limit of %d", coords, e.snap.MaxLocationsDistanceTable)
	}
	for _, s := range p.Sources() {
		if s >= coords {
			return nil, errors.Newf(errors.CodeInvalidQuery, "source index %d out of range for %d coordinates", s, coords)
		}
	}
	for _, d := range p.Destinations() {
		if d >= coords {
			return nil, errors.Newf(errors.CodeInvalidQuery, "destination index %d out of range for %d coordinates", d, coords)
		}
	}

	log, start := e.queryLog("table")
	data, err := e.backend.Table(ctx, p)
	if err != nil {
		return nil, backendErr(err)
	}
	log.Debug("query done", zap.Duration("elapsed", time.Since(start)))
	return response.NewTable(data)
}

// Nearest snaps one coordinate to its closest road positions.
func (e *Engine) Nearest(ctx context.Context, p *params.Nearest) (*response.Nearest, error) {
	release, err := e.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	if coords := len(p.Coordinates()); coords != 1 {
		return nil, errors.Newf(errors.CodeInvalidQuery, "nearest takes exactly 1 coordinate, got %d", coords)
	}
	if limited(e.snap.MaxResultsNearest, p.NumberOfResults()) {
		return nil, errors.Newf(errors.CodeTooManyLocations, "%d results exceed the configured limit of %d", p.NumberOfResults(), e.snap.MaxResultsNearest)
	}

	log, start := e.queryLog("nearest")
	data, err := e.backend.Nearest(ctx, p)
	if err != nil {
		return nil, backendErr(err)
	}
	log.Debug("query done", zap.Duration("elapsed", time.Since(start)))
	return response.NewNearest(data)
}

// Match snaps a GPS trace onto the road network.
func (e *Engine) Match(ctx context.Context, p *params.Match) (*response.Match, error) {
	release, err := e.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	coords := len(p.Coordinates())
	if coords < 2 {
		return nil, errors.Newf(errors.CodeInvalidQuery, "match needs at least 2 trace points, got %d", coords)
	}
	if limited(e.snap.MaxLocationsMapMatching, coords) {
		return nil, errors.Newf(errors.CodeTooManyLocations, "%d trace points exceed the configured limit of %d", coords, e.snap.MaxLocationsMapMatching)
	}
	if ts := len(p.Timestamps()); ts != 0 && ts != coords {
		return nil, errors.Newf(errors.CodeInvalidQuery, "got %d timestamps for %d trace points", ts, coords)
	}
	if max := e.snap.MaxRadiusMapMatching; max >= 0 {
		for i, c := range p.Coordinates() {
			if c.Radius != nil && *c.Radius > max {
				return nil, errors.Newf(errors.CodeTooManyLocations, "radius %v at trace point %d exceeds the configured limit of %v", *c.Radius, i, max)
			}
		}
	}
	if err := checkWaypoints(p.Waypoints(), coords); err != nil {
		return nil, err
	}

	log, start := e.queryLog("match")
	data, err := e.backend.Match(ctx, p)
	if err != nil {
		return nil, backendErr(err)
	}
	log.Debug("query done", zap.Duration("elapsed", time.Since(start)))
	return response.NewMatch(data)
}

// Trip computes a heuristically optimized visiting order.
func (e *Engine) Trip(ctx context.Context, p *params.Trip) (*response.Trip, error) {
	release, err := e.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	coords := len(p.Coordinates())
	if coords < 2 {
		return nil, errors.Newf(errors.CodeInvalidQuery, "trip needs at least 2 coordinates, got %d", coords)
	}
	if limited(e.snap.MaxLocationsTrip, coords) {
		return nil, errors.Newf(errors.CodeTooManyLocations, "%d coordinates exceed the configured limit of %d", coords, e.snap.MaxLocationsTrip)
	}

	log, start := e.queryLog("trip")
	data, err := e.backend.Trip(ctx, p)
	if err != nil {
		return nil, backendErr(err)
	}
	log.Debug("query done", zap.Duration("elapsed", time.Since(start)))
	return response.NewTrip(data)
}

// MaxTileZoom is the deepest zoom level the tile service serves.
const MaxTileZoom = 22

// Tile renders a debug tile of the loaded network at z/x/y.
func (e *Engine) Tile(ctx context.Context, p *params.Tile) (*response.Tile, error) {
	release, err := e.guard()
	if err != nil {
		return nil, err
	}
	defer release()

	if p.Z() > MaxTileZoom {
		return nil, errors.Newf(errors.CodeInvalidQuery, "zoom %d exceeds maximum %d", p.Z(), MaxTileZoom)
	}
	if limit := 1 << uint(p.Z()); p.X() >= limit || p.Y() >= limit {
		return nil, errors.Newf(errors.CodeInvalidQuery, "tile %d/%d out of range for zoom %d", p.X(), p.Y(), p.Z())
	}

	log, start := e.queryLog("tile")
	data, err := e.backend.Tile(ctx, p)
	if err != nil {
		return nil, backendErr(err)
	}
	log.Debug("query done", zap.Duration("elapsed", time.Since(start)))
	return response.NewTile(data), nil
}
