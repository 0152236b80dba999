//go:build unix

package localgraph

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/osrmkit/osrmkit/errors"
)

// mapFile memory-maps the dataset read-only. The release func unmaps.
func mapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.EngineLoad(err, "open dataset for mmap")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, errors.EngineLoad(err, "stat dataset for mmap")
	}
	if info.Size() == 0 {
		return nil, nil, errors.New(errors.CodeEngineLoadFailed, "dataset is empty")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, errors.EngineLoad(err, "mmap dataset")
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
