package localgraph

import (
	"sync"

	"github.com/osrmkit/osrmkit/config"
	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

// Backend answers engine queries from a loaded dataset.
type Backend struct {
	ds        *Dataset
	g         *graph
	snap      *config.Snapshot
	algorithm config.Algorithm
	release   func() error

	mu     sync.Mutex
	closed bool
}

// Open loads the dataset described by the config snapshot and builds
// its graph. Every load failure is coded EngineLoadFailed.
func Open(snap *config.Snapshot) (*Backend, error) {
	data, release, err := loadBytes(snap)
	if err != nil {
		return nil, err
	}
	fail := func(err error) error {
		if release != nil {
			release()
		}
		return err
	}

	ds, err := parseDataset(data)
	if err != nil {
		return nil, fail(err)
	}

	algorithm := config.Algorithm(ds.Algorithm)
	switch algorithm {
	case config.AlgorithmCH, config.AlgorithmMLD:
	default:
		return nil, fail(errors.Newf(errors.CodeEngineLoadFailed, "dataset declares unknown algorithm %q", ds.Algorithm))
	}
	if snap.Algorithm != "" && snap.Algorithm != algorithm {
		return nil, fail(errors.Newf(errors.CodeEngineLoadFailed,
			"dataset was built for %s, config requires %s", algorithm, snap.Algorithm))
	}

	g, err := buildGraph(ds)
	if err != nil {
		return nil, fail(err)
	}

	return &Backend{
		ds:        ds,
		g:         g,
		snap:      snap,
		algorithm: algorithm,
		release:   release,
	}, nil
}

// Algorithm reports the algorithm the loaded dataset was built for.
func (b *Backend) Algorithm() config.Algorithm {
	return b.algorithm
}

// Close releases the dataset storage.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if b.release != nil {
		return b.release()
	}
	return nil
}

// snapRadius resolves the effective snapping radius for one input
// coordinate: explicit radius, else the configured default, else
// unlimited.
func (b *Backend) snapRadius(c params.Coordinate) float64 {
	if c.Radius != nil {
		return *c.Radius
	}
	return b.snap.DefaultRadius
}

// snapCoordinate snaps one input coordinate, honoring a valid hint
// before falling back to search. It fails with NoSegment.
func (b *Backend) snapCoordinate(index int, c params.Coordinate) (int, float64, error) {
	if node, ok := decodeHint(c.Hint, b.ds.Checksum); ok {
		if idx, known := b.g.index[node]; known {
			return idx, haversine(c.Lon, c.Lat, b.g.nodes[idx].Lon, b.g.nodes[idx].Lat), nil
		}
	}
	idx, dist, ok := b.g.snap(c.Lon, c.Lat, b.snapRadius(c))
	if !ok {
		return 0, 0, errors.Newf(errors.CodeNoSegment, "coordinate %d (%v, %v) snaps to no road segment", index, c.Lon, c.Lat)
	}
	return idx, dist, nil
}

// snapAll snaps the whole coordinate sequence.
func (b *Backend) snapAll(coords []params.Coordinate) ([]int, []float64, error) {
	nodes := make([]int, len(coords))
	dists := make([]float64, len(coords))
	for i, c := range coords {
		idx, dist, err := b.snapCoordinate(i, c)
		if err != nil {
			return nil, nil, err
		}
		nodes[i] = idx
		dists[i] = dist
	}
	return nodes, dists, nil
}

// waypointFor builds the wire waypoint of one snapped coordinate.
func (b *Backend) waypointFor(node int, snapDist float64, generateHints bool) waypointOut {
	n := b.g.nodes[node]
	w := waypointOut{
		Name:     b.nodeName(node),
		Location: [2]float64{n.Lon, n.Lat},
		Distance: snapDist,
	}
	if generateHints {
		w.Hint = encodeHint(n.ID, b.ds.Checksum)
	}
	return w
}

// nodeName returns the name of the first edge leaving the node, which
// stands in for the street the node belongs to.
func (b *Backend) nodeName(node int) string {
	for _, ei := range b.g.out[node] {
		if name := b.g.edges[ei].Name; name != "" {
			return name
		}
	}
	return ""
}
