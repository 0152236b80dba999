// Tile subcommand: render a debug tile of the loaded network.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/params"
)

var tileOut string

var tileCmd = &cobra.Command{
	Use:   "tile <z> <x> <y>",
	Short: "Render a debug tile of the loaded network",
	Args:  cobra.ExactArgs(3),
	RunE:  runTile,
}

func init() {
	tileCmd.Flags().StringVarP(&tileOut, "out", "o", "", "write the tile to a file instead of stdout")
}

func runTile(cmd *cobra.Command, args []string) error {
	p := params.NewTile()
	for i, set := range []func(int) error{p.SetZ, p.SetX, p.SetY} {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("tile coordinate %q: %w", args[i], err)
		}
		if err := set(v); err != nil {
			return err
		}
	}

	r, err := eng.Tile(context.Background(), p)
	if err != nil {
		return err
	}
	blob, err := r.TakeBlob()
	if err != nil {
		return err
	}
	defer blob.Release()
	data, err := blob.Data()
	if err != nil {
		return err
	}

	if tileOut != "" {
		return os.WriteFile(tileOut, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
