package params

import "github.com/osrmkit/osrmkit/errors"

// Nearest describes one Nearest service request: the road-network
// positions closest to a single input coordinate.
type Nearest struct {
	Base
	numberOfResults int
}

// NewNearest creates a Nearest request builder asking for one result.
func NewNearest() *Nearest {
	return &Nearest{Base: newBase(), numberOfResults: 1}
}

// SetNumberOfResults requests up to n snapped candidates.
func (n *Nearest) SetNumberOfResults(count int) error {
	if count < 1 {
		return errors.InvalidArgumentf("number of results must be at least 1, got %d", count)
	}
	n.numberOfResults = count
	return nil
}

// NumberOfResults returns the requested candidate count.
func (n *Nearest) NumberOfResults() int { return n.numberOfResults }
