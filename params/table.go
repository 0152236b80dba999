package params

import "github.com/osrmkit/osrmkit/errors"

// Table describes one Table service request: a duration or distance
// matrix between coordinate subsets.
type Table struct {
	Base
	sources            []int
	destinations       []int
	annotations        TableAnnotations
	fallbackSpeed      float64
	fallbackCoordinate FallbackCoordinate
	scaleFactor        float64
}

// NewTable creates a Table request builder. Tables carry durations only
// by default, with every coordinate acting as both source and
// destination.
func NewTable() *Table {
	return &Table{
		Base:               newBase(),
		annotations:        TableAnnotationsDuration,
		fallbackCoordinate: FallbackCoordinateInput,
		scaleFactor:        1,
	}
}

// AddSource restricts the matrix rows to the coordinate at index. When
// no sources are added every coordinate is a source. Bounds against the
// coordinate sequence are checked at query time.
func (t *Table) AddSource(index int) error {
	if index < 0 {
		return errors.InvalidArgumentf("source index must be non-negative, got %d", index)
	}
	t.sources = append(t.sources, index)
	return nil
}

// AddDestination restricts the matrix columns to the coordinate at
// index. When no destinations are added every coordinate is a
// destination.
func (t *Table) AddDestination(index int) error {
	if index < 0 {
		return errors.InvalidArgumentf("destination index must be non-negative, got %d", index)
	}
	t.destinations = append(t.destinations, index)
	return nil
}

// SetAnnotations selects which matrices the response carries. The value
// must be built from the TableAnnotations constants.
func (t *Table) SetAnnotations(a TableAnnotations) error {
	switch a {
	case TableAnnotationsNone, TableAnnotationsDuration, TableAnnotationsDistance,
		TableAnnotationsAll, TableAnnotationsDuration | TableAnnotationsDistance:
		t.annotations = a
		return nil
	default:
		return errors.InvalidArgumentf("unknown table annotations %#x", uint32(a))
	}
}

// SetFallbackSpeed fills unreachable cells with straight-line estimates
// at the given speed, in km/h.
func (t *Table) SetFallbackSpeed(speed float64) error {
	if speed <= 0 {
		return errors.InvalidArgumentf("fallback speed must be positive, got %v", speed)
	}
	t.fallbackSpeed = speed
	return nil
}

// SetFallbackCoordinateType selects whether fallback estimates measure
// from the input coordinates or the snapped ones.
func (t *Table) SetFallbackCoordinateType(c FallbackCoordinate) error {
	switch c {
	case FallbackCoordinateInput, FallbackCoordinateSnapped:
		t.fallbackCoordinate = c
		return nil
	default:
		return errors.InvalidArgumentf("unknown fallback coordinate type %q", string(c))
	}
}

// SetScaleFactor multiplies every duration cell by factor.
func (t *Table) SetScaleFactor(factor float64) error {
	if factor <= 0 {
		return errors.InvalidArgumentf("scale factor must be positive, got %v", factor)
	}
	t.scaleFactor = factor
	return nil
}

// Sources returns the source index subset, empty meaning all.
func (t *Table) Sources() []int { return t.sources }

// Destinations returns the destination index subset, empty meaning all.
func (t *Table) Destinations() []int { return t.destinations }

// Annotations returns the requested matrix set.
func (t *Table) Annotations() TableAnnotations { return t.annotations }

// FallbackSpeed returns the fallback speed, zero when unset.
func (t *Table) FallbackSpeed() float64 { return t.fallbackSpeed }

// FallbackCoordinateType returns the fallback measuring base.
func (t *Table) FallbackCoordinateType() FallbackCoordinate { return t.fallbackCoordinate }

// ScaleFactor returns the duration multiplier.
func (t *Table) ScaleFactor() float64 { return t.scaleFactor }
