//go:build !unix

package localgraph

import (
	"os"

	"github.com/osrmkit/osrmkit/errors"
)

// mapFile falls back to a plain read where mmap is unavailable.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.EngineLoad(err, "read dataset")
	}
	return data, nil, nil
}
