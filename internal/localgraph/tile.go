package localgraph

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

// tileMagic identifies the debug tile format.
var tileMagic = [4]byte{'O', 'T', 'L', '1'}

// Tile renders the edges touching the slippy tile z/x/y in a compact
// binary form:
//
//	magic "OTL1"
//	uint8  z, uint32 x, uint32 y
//	uint32 edge count
//	per edge: int64 from, int64 to,
//	          float32 lon1, lat1, lon2, lat2,
//	          float32 duration, float32 distance
//
// All integers and floats are big-endian. Edges appear in dataset
// order, so tile bytes are deterministic.
func (b *Backend) Tile(ctx context.Context, p *params.Tile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err, "query canceled")
	}

	minLon, minLat, maxLon, maxLat := tileBounds(p.Z(), p.X(), p.Y())
	inside := func(lon, lat float64) bool {
		return lon >= minLon && lon < maxLon && lat >= minLat && lat < maxLat
	}

	var selected []int
	for i := range b.g.edges {
		e := &b.g.edges[i]
		from := b.g.nodes[b.g.index[e.From]]
		to := b.g.nodes[b.g.index[e.To]]
		if inside(from.Lon, from.Lat) || inside(to.Lon, to.Lat) {
			selected = append(selected, i)
		}
	}

	var buf bytes.Buffer
	buf.Write(tileMagic[:])
	write := func(v any) {
		// Writes to a bytes.Buffer cannot fail.
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	write(uint8(p.Z()))
	write(uint32(p.X()))
	write(uint32(p.Y()))
	write(uint32(len(selected)))
	for _, ei := range selected {
		e := &b.g.edges[ei]
		from := b.g.nodes[b.g.index[e.From]]
		to := b.g.nodes[b.g.index[e.To]]
		write(e.From)
		write(e.To)
		write(float32(from.Lon))
		write(float32(from.Lat))
		write(float32(to.Lon))
		write(float32(to.Lat))
		write(float32(e.Duration))
		write(float32(e.Distance))
	}
	return buf.Bytes(), nil
}
