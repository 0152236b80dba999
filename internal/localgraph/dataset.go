package localgraph

import (
	"encoding/json"
	"os"

	"github.com/osrmkit/osrmkit/errors"
)

// FormatVersion is the dataset format this backend reads and writes.
const FormatVersion = 1

// Node is one routable position.
type Node struct {
	ID  int64   `json:"id"`
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Edge is one directed road segment.
type Edge struct {
	From     int64    `json:"from"`
	To       int64    `json:"to"`
	Name     string   `json:"name,omitempty"`
	Duration float64  `json:"duration"`
	Distance float64  `json:"distance"`
	Classes  []string `json:"classes,omitempty"`
}

// Dataset is the on-disk routing dataset.
type Dataset struct {
	FormatVersion int    `json:"format_version"`
	Name          string `json:"name"`
	Profile       string `json:"profile,omitempty"`
	Algorithm     string `json:"algorithm"`
	Checksum      uint32 `json:"checksum"`
	Nodes         []Node `json:"nodes"`
	Edges         []Edge `json:"edges"`
}

func parseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.EngineLoad(err, "corrupt dataset")
	}
	if ds.FormatVersion != FormatVersion {
		return nil, errors.Newf(errors.CodeEngineLoadFailed,
			"dataset format version %d, this build reads version %d", ds.FormatVersion, FormatVersion)
	}
	return &ds, nil
}

// WriteDataset serializes a dataset to path. Used by tests and the
// dataset tooling.
func WriteDataset(path string, ds *Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return errors.Internal(err, "encode dataset")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Internal(err, "write dataset")
	}
	return nil
}
