package localgraph

import (
	"context"
	"encoding/json"

	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

// traceGapSeconds is the timestamp gap beyond which a trace is split
// when gap splitting is on.
const traceGapSeconds = 300

// tidyMeters is the distance under which a trace point is considered a
// duplicate of its predecessor when tidying.
const tidyMeters = 1.0

type matchingOut struct {
	Distance   float64         `json:"distance"`
	Duration   float64         `json:"duration"`
	Confidence float64         `json:"confidence"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
	Legs       []legOut        `json:"legs"`
}

type tracepointOut struct {
	Location       [2]float64 `json:"location"`
	Name           string     `json:"name"`
	Hint           string     `json:"hint,omitempty"`
	MatchingsIndex int        `json:"matchings_index"`
	WaypointIndex  int        `json:"waypoint_index"`
}

type matchBody struct {
	Matchings   []matchingOut    `json:"matchings"`
	Tracepoints []*tracepointOut `json:"tracepoints"`
}

// Match snaps the trace onto the network, splitting it into matchings
// at timestamp gaps and unroutable stretches. Trace points that snap
// nowhere come back as null tracepoints.
func (b *Backend) Match(ctx context.Context, p *params.Match) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err, "query canceled")
	}
	if err := b.checkFeatures(p); err != nil {
		return nil, err
	}

	coords := p.Coordinates()
	ts := p.Timestamps()
	excluded := excludeSet(p.Excludes())

	// Snap each point independently; failures become null tracepoints
	// instead of failing the query.
	snapped := make([]int, len(coords))
	snapDists := make([]float64, len(coords))
	ok := make([]bool, len(coords))
	for i, c := range coords {
		if p.Tidy() && i > 0 && haversine(coords[i-1].Lon, coords[i-1].Lat, c.Lon, c.Lat) < tidyMeters {
			continue
		}
		node, dist, err := b.snapCoordinate(i, c)
		if err != nil {
			continue
		}
		snapped[i], snapDists[i], ok[i] = node, dist, true
	}

	// Runs of consecutive matchable points become matchings. A run
	// breaks at unmatched points, large timestamp gaps, and pairs with
	// no route between them.
	body := matchBody{
		Matchings:   []matchingOut{},
		Tracepoints: make([]*tracepointOut, len(coords)),
	}
	matchedPoints := 0

	var run []int
	flush := func() error {
		if len(run) < 2 {
			run = nil
			return nil
		}
		nodes := make([]int, len(run))
		for i, idx := range run {
			nodes[i] = snapped[idx]
		}
		route, err := b.buildRoute(nodes, excluded, p)
		if err != nil {
			return err
		}
		m := matchingOut{
			Distance:   route.Distance,
			Duration:   route.Duration,
			Confidence: float64(len(run)) / float64(len(coords)),
			Geometry:   route.Geometry,
			Legs:       route.Legs,
		}
		mi := len(body.Matchings)
		body.Matchings = append(body.Matchings, m)
		for wi, idx := range run {
			w := b.waypointFor(snapped[idx], snapDists[idx], p.GenerateHints())
			body.Tracepoints[idx] = &tracepointOut{
				Location:       w.Location,
				Name:           w.Name,
				Hint:           w.Hint,
				MatchingsIndex: mi,
				WaypointIndex:  wi,
			}
			matchedPoints++
		}
		run = nil
		return nil
	}

	for i := range coords {
		if !ok[i] {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(run) > 0 {
			prev := run[len(run)-1]
			gap := p.Gaps() == params.GapsSplit && len(ts) > 0 && ts[i] > ts[prev]+traceGapSeconds
			_, routable := b.g.shortestPath(snapped[prev], snapped[i], excluded)
			if gap || !routable {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		}
		run = append(run, i)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(body.Matchings) == 0 {
		return nil, errors.New(errors.CodeNoMatch, "no trace points could be matched")
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Internal(err, "encode match payload")
	}
	return data, nil
}
