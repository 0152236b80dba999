// Package main provides the osrmkit CLI: one subcommand per query
// service, running against a local dataset.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/config"
	"github.com/osrmkit/osrmkit/engine"
	"github.com/osrmkit/osrmkit/params"
	"github.com/osrmkit/osrmkit/response"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// eng is the global engine handle, initialized on startup.
	eng *engine.Engine
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "osrmkit",
	Short: "osrmkit runs routing queries against a local dataset",
	Long: `osrmkit loads a routing dataset and answers Route, Table, Nearest,
Match, Trip and Tile queries against it. Query results are written to
stdout as the engine's serialized payload.

Coordinates are given as lon,lat pairs:
  osrmkit --dataset net.json route 13.388,52.517 13.397,52.529`,
	PersistentPreRunE: initEngine,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeEngine()
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: .osrmkit.yaml)")
	pf.String("dataset", "", "path to the routing dataset")
	pf.String("algorithm", "", "require a route-search algorithm (CH or MLD)")
	pf.Bool("mmap", false, "memory-map the dataset instead of reading it")
	pf.Bool("shared-memory", false, "load the dataset from shared memory")
	pf.String("dataset-name", "", "dataset name for shared-memory mode")
	pf.String("verbosity", "", "engine log level (debug, info, warn, error)")

	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(tripCmd)
	rootCmd.AddCommand(tileCmd)
	rootCmd.AddCommand(versionCmd)
}

// initEngine builds the engine from config file and flags.
func initEngine(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	v, err := loadConfig(configFile, cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg, err := config.New(v.GetString(cfgKeyDataset))
	if err != nil {
		return err
	}
	if a := v.GetString(cfgKeyAlgorithm); a != "" {
		if err := cfg.SetAlgorithm(config.Algorithm(a)); err != nil {
			return err
		}
	}
	if v.GetBool(cfgKeyMmap) {
		if err := cfg.SetUseMmap(true); err != nil {
			return err
		}
	}
	if v.GetBool(cfgKeySharedMemory) {
		if err := cfg.SetUseSharedMemory(true); err != nil {
			return err
		}
	}
	if name := v.GetString(cfgKeyDatasetName); name != "" {
		if err := cfg.SetDatasetName(name); err != nil {
			return err
		}
	}
	if verbosity := v.GetString(cfgKeyVerbosity); verbosity != "" {
		if err := cfg.SetVerbosity(verbosity); err != nil {
			return err
		}
	}

	eng, err = engine.New(cfg)
	return err
}

// closeEngine releases the engine if one was built.
func closeEngine() error {
	if eng != nil {
		return eng.Close()
	}
	return nil
}

// addCoordinates parses lon,lat arguments into the request.
func addCoordinates(p interface {
	AddCoordinate(lon, lat float64) error
}, args []string) error {
	for _, arg := range args {
		parts := strings.SplitN(arg, ",", 2)
		if len(parts) != 2 {
			return fmt.Errorf("coordinate %q is not lon,lat", arg)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", arg, err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", arg, err)
		}
		if err := p.AddCoordinate(lon, lat); err != nil {
			return err
		}
	}
	return nil
}

// writePayload transfers the payload out of a response and writes it.
func writePayload(r interface {
	TakeBlob() (*response.Blob, error)
}) error {
	blob, err := r.TakeBlob()
	if err != nil {
		return err
	}
	defer blob.Release()
	data, err := blob.Data()
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}
	_, err = fmt.Println()
	return err
}

func parseGeometries(s string) (params.Geometries, error) {
	switch s {
	case "", "polyline":
		return params.GeometriesPolyline, nil
	case "polyline6":
		return params.GeometriesPolyline6, nil
	case "geojson":
		return params.GeometriesGeoJSON, nil
	default:
		return "", fmt.Errorf("unknown geometries %q", s)
	}
}
