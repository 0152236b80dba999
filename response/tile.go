package response

// Tile is a Tile service result: an opaque binary tile. It has no
// decoded view; the payload is the result.
type Tile struct {
	payload payload
}

// NewTile wraps a serialized tile payload.
func NewTile(data []byte) *Tile {
	return &Tile{payload: payload{data: data}}
}

// Data returns the tile bytes while the response still owns them.
func (t *Tile) Data() ([]byte, error) { return t.payload.bytes() }

// Size returns the tile length in bytes.
func (t *Tile) Size() (int, error) {
	data, err := t.payload.bytes()
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// TakeBlob transfers the tile bytes out of the response.
func (t *Tile) TakeBlob() (*Blob, error) { return t.payload.take() }

// Close releases the payload if it was not transferred.
func (t *Tile) Close() { t.payload.close() }
