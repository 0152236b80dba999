package localgraph

import (
	"context"
	"encoding/json"

	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

type nearestBody struct {
	Waypoints []waypointOut `json:"waypoints"`
}

// Nearest returns the road positions closest to the single input
// coordinate, nearest first.
func (b *Backend) Nearest(ctx context.Context, p *params.Nearest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err, "query canceled")
	}

	c := p.Coordinates()[0]
	nodes, dists := b.g.nearest(c.Lon, c.Lat, p.NumberOfResults())

	radius := b.snapRadius(c)
	body := nearestBody{Waypoints: []waypointOut{}}
	for i, n := range nodes {
		if radius >= 0 && dists[i] > radius {
			break
		}
		body.Waypoints = append(body.Waypoints, b.waypointFor(n, dists[i], p.GenerateHints()))
	}
	if len(body.Waypoints) == 0 {
		return nil, errors.Newf(errors.CodeNoSegment, "coordinate (%v, %v) snaps to no road segment", c.Lon, c.Lat)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Internal(err, "encode nearest payload")
	}
	return data, nil
}
