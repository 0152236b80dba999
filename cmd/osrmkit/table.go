// Table subcommand: duration/distance matrix between coordinates.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/params"
)

var (
	tableSources       []int
	tableDestinations  []int
	tableDistances     bool
	tableFallbackSpeed float64
	tableScaleFactor   float64
)

var tableCmd = &cobra.Command{
	Use:   "table <lon,lat> [lon,lat...]",
	Short: "Compute a travel-time matrix between the coordinates",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().IntSliceVar(&tableSources, "sources", nil, "restrict matrix rows to these coordinate indices")
	tableCmd.Flags().IntSliceVar(&tableDestinations, "destinations", nil, "restrict matrix columns to these coordinate indices")
	tableCmd.Flags().BoolVar(&tableDistances, "distances", false, "include the distance matrix")
	tableCmd.Flags().Float64Var(&tableFallbackSpeed, "fallback-speed", 0, "estimate unreachable cells at this speed (km/h)")
	tableCmd.Flags().Float64Var(&tableScaleFactor, "scale-factor", 0, "multiply durations by this factor")
}

func runTable(cmd *cobra.Command, args []string) error {
	p := params.NewTable()
	if err := addCoordinates(p, args); err != nil {
		return err
	}
	for _, s := range tableSources {
		if err := p.AddSource(s); err != nil {
			return err
		}
	}
	for _, d := range tableDestinations {
		if err := p.AddDestination(d); err != nil {
			return err
		}
	}
	if tableDistances {
		if err := p.SetAnnotations(params.TableAnnotationsAll); err != nil {
			return err
		}
	}
	if tableFallbackSpeed > 0 {
		if err := p.SetFallbackSpeed(tableFallbackSpeed); err != nil {
			return err
		}
	}
	if tableScaleFactor > 0 {
		if err := p.SetScaleFactor(tableScaleFactor); err != nil {
			return err
		}
	}

	r, err := eng.Table(context.Background(), p)
	if err != nil {
		return err
	}
	return writePayload(r)
}
