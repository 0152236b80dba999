package engine

import (
	"context"

	"github.com/osrmkit/osrmkit/config"
	"github.com/osrmkit/osrmkit/params"
)

// QueryBackend executes validated queries against a loaded dataset and
// returns the raw response payload. Implementations are safe for
// concurrent use between Open and Close.
//
// Payload bytes are JSON documents for every service except Tile, which
// returns a binary tile.
type QueryBackend interface {
	// Algorithm reports the route-search algorithm the loaded dataset
	// actually runs.
	Algorithm() config.Algorithm

	Route(ctx context.Context, p *params.Route) ([]byte, error)
	Table(ctx context.Context, p *params.Table) ([]byte, error)
	Nearest(ctx context.Context, p *params.Nearest) ([]byte, error)
	Match(ctx context.Context, p *params.Match) ([]byte, error)
	Trip(ctx context.Context, p *params.Trip) ([]byte, error)
	Tile(ctx context.Context, p *params.Tile) ([]byte, error)

	Close() error
}
