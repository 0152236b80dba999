package localgraph

import (
	"context"
	"encoding/json"
	"math"

	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

type tableBody struct {
	Durations          [][]matrixCell `json:"durations,omitempty"`
	Distances          [][]matrixCell `json:"distances,omitempty"`
	Sources            []waypointOut  `json:"sources,omitempty"`
	Destinations       []waypointOut  `json:"destinations,omitempty"`
	FallbackSpeedCells [][2]int       `json:"fallback_speed_cells,omitempty"`
}

// Table computes the requested duration/distance matrices.
func (b *Backend) Table(ctx context.Context, p *params.Table) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err, "query canceled")
	}

	coords := p.Coordinates()
	nodes, snapDists, err := b.snapAll(coords)
	if err != nil {
		return nil, err
	}

	sources := p.Sources()
	if len(sources) == 0 {
		sources = allIndices(len(coords))
	}
	destinations := p.Destinations()
	if len(destinations) == 0 {
		destinations = allIndices(len(coords))
	}

	excluded := excludeSet(p.Excludes())
	wantDur := p.Annotations().HasDuration()
	wantDist := p.Annotations().HasDistance()

	var body tableBody
	if wantDur {
		body.Durations = make([][]matrixCell, len(sources))
	}
	if wantDist {
		body.Distances = make([][]matrixCell, len(sources))
	}

	for i, src := range sources {
		dur, dist, _ := b.g.dijkstra(nodes[src], excluded)
		if wantDur {
			body.Durations[i] = make([]matrixCell, len(destinations))
		}
		if wantDist {
			body.Distances[i] = make([]matrixCell, len(destinations))
		}
		for j, dst := range destinations {
			d := dur[nodes[dst]]
			reachable := !math.IsInf(d, 1)
			if !reachable && p.FallbackSpeed() > 0 {
				estDist, estDur := b.fallbackEstimate(coords, nodes, src, dst, p)
				if wantDur {
					body.Durations[i][j] = matrixCell(estDur * p.ScaleFactor())
				}
				if wantDist {
					body.Distances[i][j] = matrixCell(estDist)
				}
				body.FallbackSpeedCells = append(body.FallbackSpeedCells, [2]int{i, j})
				continue
			}
			if wantDur {
				body.Durations[i][j] = matrixCell(d * p.ScaleFactor())
			}
			if wantDist {
				body.Distances[i][j] = matrixCell(dist[nodes[dst]])
			}
		}
	}

	if !p.SkipWaypoints() {
		body.Sources = b.subsetWaypoints(nodes, snapDists, sources, p.GenerateHints())
		body.Destinations = b.subsetWaypoints(nodes, snapDists, destinations, p.GenerateHints())
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Internal(err, "encode table payload")
	}
	return data, nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (b *Backend) subsetWaypoints(nodes []int, snapDists []float64, subset []int, hints bool) []waypointOut {
	out := make([]waypointOut, len(subset))
	for i, idx := range subset {
		out[i] = b.waypointFor(nodes[idx], snapDists[idx], hints)
	}
	return out
}

// fallbackEstimate prices an unreachable pair by straight-line distance
// at the configured fallback speed, measured either between the input
// coordinates or the snapped ones.
func (b *Backend) fallbackEstimate(coords []params.Coordinate, nodes []int, from, to int, p *params.Table) (distM, durS float64) {
	var lon1, lat1, lon2, lat2 float64
	if p.FallbackCoordinateType() == params.FallbackCoordinateSnapped {
		n1, n2 := b.g.nodes[nodes[from]], b.g.nodes[nodes[to]]
		lon1, lat1, lon2, lat2 = n1.Lon, n1.Lat, n2.Lon, n2.Lat
	} else {
		lon1, lat1, lon2, lat2 = coords[from].Lon, coords[from].Lat, coords[to].Lon, coords[to].Lat
	}
	distM = haversine(lon1, lat1, lon2, lat2)
	durS = distM / (p.FallbackSpeed() / 3.6)
	return distM, durS
}
