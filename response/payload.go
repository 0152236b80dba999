package response

import (
	"sync"

	"github.com/osrmkit/osrmkit/errors"
)

// payload guards the serialized bytes of one response and implements
// the single-transfer ownership protocol shared by all response types.
type payload struct {
	mu          sync.Mutex
	data        []byte
	transferred bool
}

// take hands the bytes to a new Blob. Only the first call succeeds.
func (p *payload) take() (*Blob, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.transferred {
		return nil, errors.AlreadyTransferred()
	}
	p.transferred = true
	b := &Blob{data: p.data}
	p.data = nil
	return b, nil
}

// bytes returns the payload while the response still owns it.
func (p *payload) bytes() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.transferred {
		return nil, errors.AlreadyTransferred()
	}
	return p.data, nil
}

// close drops the bytes if the response still owns them. Transferred
// bytes belong to their blob and are left alone.
func (p *payload) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.transferred {
		p.data = nil
		p.transferred = true
	}
}
