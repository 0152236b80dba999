package response

import (
	"sync"

	"github.com/osrmkit/osrmkit/errors"
)

// Blob is a serialized payload whose ownership was transferred out of a
// response. The holder releases it exactly once; Data and Size fail
// after release.
type Blob struct {
	mu       sync.Mutex
	data     []byte
	released bool
}

// Data returns the payload bytes. The slice is owned by the blob and
// valid until Release.
func (b *Blob) Data() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil, errors.AlreadyClosed("blob")
	}
	return b.data, nil
}

// Size returns the payload length in bytes.
func (b *Blob) Size() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return 0, errors.AlreadyClosed("blob")
	}
	return len(b.data), nil
}

// Release frees the payload. Releasing twice is safe and does nothing.
func (b *Blob) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	b.released = true
}
