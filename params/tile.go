package params

import "github.com/osrmkit/osrmkit/errors"

// Tile describes one Tile service request, addressed by slippy-map
// coordinates. Tiles take no input coordinate sequence.
type Tile struct {
	x, y, z int
}

// NewTile creates a Tile request builder addressing tile 0/0/0.
func NewTile() *Tile {
	return &Tile{}
}

// SetX sets the tile column.
func (t *Tile) SetX(x int) error {
	if x < 0 {
		return errors.InvalidArgumentf("tile x must be non-negative, got %d", x)
	}
	t.x = x
	return nil
}

// SetY sets the tile row.
func (t *Tile) SetY(y int) error {
	if y < 0 {
		return errors.InvalidArgumentf("tile y must be non-negative, got %d", y)
	}
	t.y = y
	return nil
}

// SetZ sets the zoom level. Whether the level is within the supported
// range is decided at query time.
func (t *Tile) SetZ(z int) error {
	if z < 0 {
		return errors.InvalidArgumentf("tile z must be non-negative, got %d", z)
	}
	t.z = z
	return nil
}

// X returns the tile column.
func (t *Tile) X() int { return t.x }

// Y returns the tile row.
func (t *Tile) Y() int { return t.y }

// Z returns the zoom level.
func (t *Tile) Z() int { return t.z }
