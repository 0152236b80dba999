// Trip subcommand: heuristically optimized visiting order.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/params"
)

var (
	tripNoRoundtrip bool
	tripSource      string
	tripDestination string
)

var tripCmd = &cobra.Command{
	Use:   "trip <lon,lat> <lon,lat> [lon,lat...]",
	Short: "Compute an optimized visiting order over the coordinates",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTrip,
}

func init() {
	tripCmd.Flags().BoolVar(&tripNoRoundtrip, "no-roundtrip", false, "do not return to the start")
	tripCmd.Flags().StringVar(&tripSource, "source", "any", "trip start constraint (any, first)")
	tripCmd.Flags().StringVar(&tripDestination, "destination", "any", "trip end constraint (any, last)")
}

func runTrip(cmd *cobra.Command, args []string) error {
	p := params.NewTrip()
	if err := addCoordinates(p, args); err != nil {
		return err
	}
	p.SetRoundtrip(!tripNoRoundtrip)
	if err := p.SetSource(params.TripSource(tripSource)); err != nil {
		return err
	}
	if err := p.SetDestination(params.TripDestination(tripDestination)); err != nil {
		return err
	}

	r, err := eng.Trip(context.Background(), p)
	if err != nil {
		return err
	}
	return writePayload(r)
}
