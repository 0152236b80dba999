package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osrmkit/osrmkit/errors"
)

func writeDatasetFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.osrm.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format_version":1}`), 0o644))
	return path
}

func TestNewMissingDataset(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.osrm.json"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataSetNotFound, errors.CodeOf(err))
}

func TestNewDirectoryIsInvalid(t *testing.T) {
	_, err := New(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidDataSet, errors.CodeOf(err))
}

func TestNewEmptyPathSelectsSharedMemory(t *testing.T) {
	cfg, err := New("")
	require.NoError(t, err)

	snap, err := cfg.Finalize()
	require.NoError(t, err)
	assert.True(t, snap.UseSharedMemory)
	assert.Empty(t, snap.BasePath)
}

func TestLimitValidation(t *testing.T) {
	cfg, err := New(writeDatasetFile(t))
	require.NoError(t, err)

	assert.NoError(t, cfg.SetMaxLocationsDistanceTable(-1))
	assert.NoError(t, cfg.SetMaxLocationsDistanceTable(0))
	assert.NoError(t, cfg.SetMaxLocationsDistanceTable(1000))

	err = cfg.SetMaxLocationsDistanceTable(-2)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	assert.NoError(t, cfg.SetMaxRadiusMapMatching(-1.0))
	err = cfg.SetMaxRadiusMapMatching(-0.5)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	err = cfg.SetDefaultRadius(-3)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestAlgorithmValidation(t *testing.T) {
	cfg, err := New(writeDatasetFile(t))
	require.NoError(t, err)

	assert.NoError(t, cfg.SetAlgorithm(AlgorithmCH))
	assert.NoError(t, cfg.SetAlgorithm(AlgorithmMLD))
	err = cfg.SetAlgorithm(Algorithm("DIJKSTRA"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestVerbosityValidation(t *testing.T) {
	cfg, err := New(writeDatasetFile(t))
	require.NoError(t, err)

	assert.NoError(t, cfg.SetVerbosity(""))
	assert.NoError(t, cfg.SetVerbosity("debug"))
	assert.NoError(t, cfg.SetVerbosity("warn"))
	err = cfg.SetVerbosity("chatty")
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}

func TestFeatureDatasets(t *testing.T) {
	cfg, err := New(writeDatasetFile(t))
	require.NoError(t, err)

	require.NoError(t, cfg.DisableFeatureDataset(FeatureRouteSteps))
	require.NoError(t, cfg.DisableFeatureDataset(FeatureRouteSteps)) // idempotent
	require.NoError(t, cfg.DisableFeatureDataset(FeatureRouteGeometry))

	err = cfg.DisableFeatureDataset(FeatureDataset("turn_lanes"))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))

	snap, err := cfg.Finalize()
	require.NoError(t, err)
	assert.Len(t, snap.DisabledFeatureDatasets, 2)
	assert.True(t, snap.FeatureDisabled(FeatureRouteSteps))
	assert.True(t, snap.FeatureDisabled(FeatureRouteGeometry))
}

func TestFinalizeConsumesConfig(t *testing.T) {
	cfg, err := New(writeDatasetFile(t))
	require.NoError(t, err)
	require.NoError(t, cfg.SetMaxAlternatives(5))

	snap, err := cfg.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 5, snap.MaxAlternatives)

	_, err = cfg.Finalize()
	assert.Equal(t, errors.CodeAlreadyConsumed, errors.CodeOf(err))

	err = cfg.SetMaxAlternatives(7)
	assert.Equal(t, errors.CodeAlreadyConsumed, errors.CodeOf(err))
}

func TestSnapshotDefaults(t *testing.T) {
	cfg, err := New(writeDatasetFile(t))
	require.NoError(t, err)

	snap, err := cfg.Finalize()
	require.NoError(t, err)

	assert.Equal(t, -1, snap.MaxLocationsTrip)
	assert.Equal(t, -1, snap.MaxLocationsViaroute)
	assert.Equal(t, -1, snap.MaxLocationsDistanceTable)
	assert.Equal(t, -1, snap.MaxLocationsMapMatching)
	assert.Equal(t, -1, snap.MaxResultsNearest)
	assert.Equal(t, 3, snap.MaxAlternatives)
	assert.Equal(t, -1.0, snap.MaxRadiusMapMatching)
	assert.Equal(t, -1.0, snap.DefaultRadius)
	assert.Equal(t, Algorithm(""), snap.Algorithm)
}
