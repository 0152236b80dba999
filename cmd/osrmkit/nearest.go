// Nearest subcommand: closest road positions for one coordinate.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/params"
)

var nearestResults int

var nearestCmd = &cobra.Command{
	Use:   "nearest <lon,lat>",
	Short: "Snap one coordinate to its closest road positions",
	Args:  cobra.ExactArgs(1),
	RunE:  runNearest,
}

func init() {
	nearestCmd.Flags().IntVarP(&nearestResults, "number", "n", 1, "number of results")
}

func runNearest(cmd *cobra.Command, args []string) error {
	p := params.NewNearest()
	if err := addCoordinates(p, args); err != nil {
		return err
	}
	if err := p.SetNumberOfResults(nearestResults); err != nil {
		return err
	}

	r, err := eng.Nearest(context.Background(), p)
	if err != nil {
		return err
	}
	return writePayload(r)
}
