// Match subcommand: snap a GPS trace onto the road network.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/params"
)

var (
	matchTimestamps []uint
	matchGaps       string
	matchTidy       bool
)

var matchCmd = &cobra.Command{
	Use:   "match <lon,lat> <lon,lat> [lon,lat...]",
	Short: "Snap a GPS trace onto the road network",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().UintSliceVar(&matchTimestamps, "timestamps", nil, "trace timestamps in seconds, one per coordinate")
	matchCmd.Flags().StringVar(&matchGaps, "gaps", "split", "gap handling (split, ignore)")
	matchCmd.Flags().BoolVar(&matchTidy, "tidy", false, "drop obvious trace outliers before matching")
}

func runMatch(cmd *cobra.Command, args []string) error {
	p := params.NewMatch()
	if err := addCoordinates(p, args); err != nil {
		return err
	}
	if len(matchTimestamps) > 0 && len(matchTimestamps) != len(args) {
		return fmt.Errorf("got %d timestamps for %d coordinates", len(matchTimestamps), len(args))
	}
	for _, ts := range matchTimestamps {
		if err := p.AddTimestamp(uint32(ts)); err != nil {
			return err
		}
	}
	if err := p.SetGaps(params.Gaps(matchGaps)); err != nil {
		return err
	}
	p.SetTidy(matchTidy)

	r, err := eng.Match(context.Background(), p)
	if err != nil {
		return err
	}
	return writePayload(r)
}
