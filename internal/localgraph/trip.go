package localgraph

import (
	"context"
	"encoding/json"
	"math"

	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

type tripWaypointOut struct {
	waypointOut
	TripsIndex    int `json:"trips_index"`
	WaypointIndex int `json:"waypoint_index"`
}

type tripBody struct {
	Trips     []routeOut        `json:"trips"`
	Waypoints []tripWaypointOut `json:"waypoints,omitempty"`
}

// Trip orders the coordinates with a nearest-neighbour heuristic and
// routes through them.
func (b *Backend) Trip(ctx context.Context, p *params.Trip) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err, "query canceled")
	}
	if err := b.checkFeatures(p); err != nil {
		return nil, err
	}

	nodes, snapDists, err := b.snapAll(p.Coordinates())
	if err != nil {
		return nil, err
	}
	excluded := excludeSet(p.Excludes())

	order := b.visitOrder(nodes, excluded, p)

	// The routed sequence closes the loop for round trips.
	seq := make([]int, 0, len(order)+1)
	for _, idx := range order {
		seq = append(seq, nodes[idx])
	}
	if p.Roundtrip() {
		seq = append(seq, nodes[order[0]])
	}

	route, err := b.buildRoute(seq, excluded, p)
	if err != nil {
		return nil, err
	}

	body := tripBody{Trips: []routeOut{*route}}
	if !p.SkipWaypoints() {
		body.Waypoints = make([]tripWaypointOut, len(nodes))
		for pos, idx := range order {
			body.Waypoints[idx] = tripWaypointOut{
				waypointOut:   b.waypointFor(nodes[idx], snapDists[idx], p.GenerateHints()),
				TripsIndex:    0,
				WaypointIndex: pos,
			}
		}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Internal(err, "encode trip payload")
	}
	return data, nil
}

// visitOrder picks the visiting order greedily by routed duration. The
// first input always starts the trip, which also satisfies the "first"
// source constraint; the "last" destination constraint pins the final
// input to the end.
func (b *Backend) visitOrder(nodes []int, excluded map[string]struct{}, p *params.Trip) []int {
	n := len(nodes)
	pinLast := p.Destination() == params.TripDestinationLast

	visited := make([]bool, n)
	order := make([]int, 0, n)
	order = append(order, 0)
	visited[0] = true

	current := 0
	for len(order) < n {
		dur, _, _ := b.g.dijkstra(nodes[current], excluded)
		next := -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			if pinLast && i == n-1 && len(order) < n-1 {
				continue
			}
			d := dur[nodes[i]]
			if d < best {
				best = d
				next = i
			}
		}
		if next < 0 {
			// Remaining points are unreachable; keep input order so the
			// route builder reports the failing pair.
			for i := 0; i < n; i++ {
				if !visited[i] {
					order = append(order, i)
					visited[i] = true
				}
			}
			break
		}
		order = append(order, next)
		visited[next] = true
		current = next
	}
	return order
}
