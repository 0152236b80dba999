package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/osrmkit/osrmkit/errors"
)

// Algorithm selects the route-search algorithm. The empty value means
// auto-detect from the dataset's embedded metadata.
type Algorithm string

const (
	AlgorithmCH  Algorithm = "CH"  // Contraction Hierarchies
	AlgorithmMLD Algorithm = "MLD" // Multi-Level Dijkstra
)

// FeatureDataset names an optional per-dataset feature that can be left
// unloaded to save memory.
type FeatureDataset string

const (
	FeatureRouteSteps    FeatureDataset = "route_steps"
	FeatureRouteGeometry FeatureDataset = "route_geometry"
)

// Config is a draft of engine construction settings.
// It is not safe for concurrent mutation.
type Config struct {
	basePath        string
	useSharedMemory bool
	useMmap         bool
	memoryFile      string
	datasetName     string
	verbosity       string
	algorithm       Algorithm

	maxLocationsTrip          int
	maxLocationsViaroute      int
	maxLocationsDistanceTable int
	maxLocationsMapMatching   int
	maxResultsNearest         int
	maxAlternatives           int
	maxRadiusMapMatching      float64
	defaultRadius             float64

	disabledFeatureDatasets []FeatureDataset

	consumed bool
}

// Snapshot is the immutable view of a finalized Config, owned by the
// engine constructed from it.
type Snapshot struct {
	BasePath        string
	UseSharedMemory bool
	UseMmap         bool
	MemoryFile      string
	DatasetName     string
	Verbosity       string
	Algorithm       Algorithm

	MaxLocationsTrip          int
	MaxLocationsViaroute      int
	MaxLocationsDistanceTable int
	MaxLocationsMapMatching   int
	MaxResultsNearest         int
	MaxAlternatives           int
	MaxRadiusMapMatching      float64
	DefaultRadius             float64

	DisabledFeatureDatasets []FeatureDataset
}

// New creates a config draft for the dataset at basePath.
// An empty basePath configures shared-memory mode, where the dataset is
// resolved by name from the shared-memory region instead of a file.
func New(basePath string) (*Config, error) {
	c := &Config{
		basePath:                  basePath,
		maxLocationsTrip:          -1,
		maxLocationsViaroute:      -1,
		maxLocationsDistanceTable: -1,
		maxLocationsMapMatching:   -1,
		maxResultsNearest:         -1,
		maxAlternatives:           3,
		maxRadiusMapMatching:      -1.0,
		defaultRadius:             -1.0,
	}

	if basePath == "" {
		c.useSharedMemory = true
		return c, nil
	}

	info, err := os.Stat(basePath)
	if os.IsNotExist(err) {
		return nil, errors.Newf(errors.CodeDataSetNotFound, "no routing dataset at %q", basePath)
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidDataSet, err, fmt.Sprintf("stat dataset at %q", basePath))
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.CodeInvalidDataSet, "%q is a directory, expected a dataset file", basePath)
	}
	return c, nil
}

func (c *Config) guard() error {
	if c.consumed {
		return errors.AlreadyConsumed()
	}
	return nil
}

// checkLimit validates an integer limit: -1 is the unlimited sentinel,
// any other negative value is out of domain.
func checkLimit(name string, v int) error {
	if v < -1 {
		return errors.InvalidArgumentf("%s must be -1 (unlimited) or non-negative, got %d", name, v)
	}
	return nil
}

func checkRadius(name string, v float64) error {
	if v < 0 && v != -1.0 {
		return errors.InvalidArgumentf("%s must be -1.0 (unlimited) or non-negative, got %v", name, v)
	}
	return nil
}

// SetAlgorithm explicitly selects the route-search algorithm. Without an
// explicit selection the engine auto-detects it from dataset metadata.
func (c *Config) SetAlgorithm(a Algorithm) error {
	if err := c.guard(); err != nil {
		return err
	}
	switch a {
	case AlgorithmCH, AlgorithmMLD:
		c.algorithm = a
		return nil
	default:
		return errors.InvalidArgumentf("unknown algorithm %q", string(a))
	}
}

// SetMaxLocationsTrip limits the number of locations a Trip query may carry.
func (c *Config) SetMaxLocationsTrip(max int) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkLimit("max_locations_trip", max); err != nil {
		return err
	}
	c.maxLocationsTrip = max
	return nil
}

// SetMaxLocationsViaroute limits the number of locations a Route query may carry.
func (c *Config) SetMaxLocationsViaroute(max int) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkLimit("max_locations_viaroute", max); err != nil {
		return err
	}
	c.maxLocationsViaroute = max
	return nil
}

// SetMaxLocationsDistanceTable limits the number of locations a Table query may carry.
func (c *Config) SetMaxLocationsDistanceTable(max int) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkLimit("max_locations_distance_table", max); err != nil {
		return err
	}
	c.maxLocationsDistanceTable = max
	return nil
}

// SetMaxLocationsMapMatching limits the number of trace points a Match query may carry.
func (c *Config) SetMaxLocationsMapMatching(max int) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkLimit("max_locations_map_matching", max); err != nil {
		return err
	}
	c.maxLocationsMapMatching = max
	return nil
}

// SetMaxRadiusMapMatching limits the snapping radius, in meters, a Match
// query may request per trace point.
func (c *Config) SetMaxRadiusMapMatching(max float64) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkRadius("max_radius_map_matching", max); err != nil {
		return err
	}
	c.maxRadiusMapMatching = max
	return nil
}

// SetMaxResultsNearest limits how many results a Nearest query may request.
func (c *Config) SetMaxResultsNearest(max int) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkLimit("max_results_nearest", max); err != nil {
		return err
	}
	c.maxResultsNearest = max
	return nil
}

// SetDefaultRadius sets the snapping radius, in meters, applied to
// coordinates that carry no explicit radius.
func (c *Config) SetDefaultRadius(radius float64) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkRadius("default_radius", radius); err != nil {
		return err
	}
	c.defaultRadius = radius
	return nil
}

// SetMaxAlternatives limits the number of alternative routes a query may
// request. The default is 3.
func (c *Config) SetMaxAlternatives(max int) error {
	if err := c.guard(); err != nil {
		return err
	}
	if err := checkLimit("max_alternatives", max); err != nil {
		return err
	}
	c.maxAlternatives = max
	return nil
}

// SetUseMmap toggles memory-mapping the dataset instead of reading it.
// When both mmap and shared memory are enabled, mmap takes precedence;
// the storage layer documents this ordering.
func (c *Config) SetUseMmap(on bool) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.useMmap = on
	return nil
}

// SetUseSharedMemory toggles loading the dataset from the shared-memory
// region instead of the base path.
func (c *Config) SetUseSharedMemory(on bool) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.useSharedMemory = on
	return nil
}

// SetMemoryFile overrides the file backing the memory-mapped dataset.
func (c *Config) SetMemoryFile(path string) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.memoryFile = path
	return nil
}

// SetDatasetName names the dataset to resolve in shared-memory mode.
func (c *Config) SetDatasetName(name string) error {
	if err := c.guard(); err != nil {
		return err
	}
	c.datasetName = name
	return nil
}

// SetVerbosity sets the engine log level: "debug", "info", "warn" or
// "error". The empty string disables engine logging.
func (c *Config) SetVerbosity(verbosity string) error {
	if err := c.guard(); err != nil {
		return err
	}
	if verbosity != "" {
		if _, err := zapcore.ParseLevel(verbosity); err != nil {
			return errors.InvalidArgumentf("unknown verbosity %q", verbosity)
		}
	}
	c.verbosity = verbosity
	return nil
}

// DisableFeatureDataset marks an optional feature dataset to be left
// unloaded. Queries needing it fail with DisabledDataset.
func (c *Config) DisableFeatureDataset(name FeatureDataset) error {
	if err := c.guard(); err != nil {
		return err
	}
	switch name {
	case FeatureRouteSteps, FeatureRouteGeometry:
	default:
		return errors.InvalidArgumentf("unknown feature dataset %q", string(name))
	}
	for _, existing := range c.disabledFeatureDatasets {
		if existing == name {
			return nil
		}
	}
	c.disabledFeatureDatasets = append(c.disabledFeatureDatasets, name)
	return nil
}

// ClearDisabledFeatureDatasets re-enables all feature datasets.
func (c *Config) ClearDisabledFeatureDatasets() error {
	if err := c.guard(); err != nil {
		return err
	}
	c.disabledFeatureDatasets = nil
	return nil
}

// Finalize consumes the draft and returns its immutable snapshot.
// A Config can be finalized exactly once; further use fails with
// AlreadyConsumed.
func (c *Config) Finalize() (*Snapshot, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.consumed = true

	disabled := make([]FeatureDataset, len(c.disabledFeatureDatasets))
	copy(disabled, c.disabledFeatureDatasets)

	return &Snapshot{
		BasePath:        c.basePath,
		UseSharedMemory: c.useSharedMemory,
		UseMmap:         c.useMmap,
		MemoryFile:      c.memoryFile,
		DatasetName:     c.datasetName,
		Verbosity:       c.verbosity,
		Algorithm:       c.algorithm,

		MaxLocationsTrip:          c.maxLocationsTrip,
		MaxLocationsViaroute:      c.maxLocationsViaroute,
		MaxLocationsDistanceTable: c.maxLocationsDistanceTable,
		MaxLocationsMapMatching:   c.maxLocationsMapMatching,
		MaxResultsNearest:         c.maxResultsNearest,
		MaxAlternatives:           c.maxAlternatives,
		MaxRadiusMapMatching:      c.maxRadiusMapMatching,
		DefaultRadius:             c.defaultRadius,

		DisabledFeatureDatasets: disabled,
	}, nil
}

// FeatureDisabled reports whether a feature dataset was left unloaded.
func (s *Snapshot) FeatureDisabled(name FeatureDataset) bool {
	for _, d := range s.DisabledFeatureDatasets {
		if d == name {
			return true
		}
	}
	return false
}
