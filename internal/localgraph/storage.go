package localgraph

import (
	"os"
	"path/filepath"

	"github.com/osrmkit/osrmkit/config"
	"github.com/osrmkit/osrmkit/errors"
)

// defaultDatasetName names the shared-memory dataset when the config
// does not.
const defaultDatasetName = "osrmkit"

// sharedMemoryDir returns the directory shared-memory datasets live in.
func sharedMemoryDir() string {
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		return "/dev/shm"
	}
	return os.TempDir()
}

// loadBytes resolves the storage mode and returns the raw dataset bytes
// plus a release func. Memory mapping wins when both mmap and shared
// memory are requested; memory_file overrides the mapped path.
func loadBytes(snap *config.Snapshot) ([]byte, func() error, error) {
	switch {
	case snap.UseMmap:
		path := snap.BasePath
		if snap.MemoryFile != "" {
			path = snap.MemoryFile
		}
		return mapFile(path)

	case snap.UseSharedMemory:
		name := snap.DatasetName
		if name == "" {
			name = defaultDatasetName
		}
		path := filepath.Join(sharedMemoryDir(), name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, errors.EngineLoad(err, "read shared-memory dataset "+name)
		}
		return data, nil, nil

	default:
		data, err := os.ReadFile(snap.BasePath)
		if err != nil {
			return nil, nil, errors.EngineLoad(err, "read dataset")
		}
		return data, nil, nil
	}
}
