package params

import "github.com/osrmkit/osrmkit/errors"

// Match describes one Match service request: snapping a GPS trace onto
// the road network.
type Match struct {
	Base
	routeLike
	timestamps []uint32
	gaps       Gaps
	tidy       bool
}

// NewMatch creates a Match request builder with default options.
func NewMatch() *Match {
	return &Match{
		Base:      newBase(),
		routeLike: newRouteLike(),
		gaps:      GapsSplit,
	}
}

// AddTimestamp appends a trace timestamp, in seconds. Timestamps pair
// with coordinates strictly in the order coordinates were added; a query
// with a partial timestamp list fails.
func (m *Match) AddTimestamp(ts uint32) error {
	if len(m.timestamps) >= len(m.Coordinates()) {
		return errors.IndexOutOfRange("Timestamp", len(m.timestamps), len(m.Coordinates()))
	}
	m.timestamps = append(m.timestamps, ts)
	return nil
}

// SetGaps controls whether large trace gaps split the matching.
func (m *Match) SetGaps(g Gaps) error {
	switch g {
	case GapsSplit, GapsIgnore:
		m.gaps = g
		return nil
	default:
		return errors.InvalidArgumentf("unknown gaps %q", string(g))
	}
}

// SetTidy removes obvious trace outliers before matching.
func (m *Match) SetTidy(on bool) { m.tidy = on }

// Timestamps returns the trace timestamps.
func (m *Match) Timestamps() []uint32 { return m.timestamps }

// Gaps returns the gap handling mode.
func (m *Match) Gaps() Gaps { return m.gaps }

// Tidy reports whether outlier removal was requested.
func (m *Match) Tidy() bool { return m.tidy }
