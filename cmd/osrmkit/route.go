// Route subcommand: fastest path through the given coordinates.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/osrmkit/osrmkit/params"
)

var (
	routeSteps       bool
	routeGeometries  string
	routeAnnotations bool
	routeExcludes    []string
)

var routeCmd = &cobra.Command{
	Use:   "route <lon,lat> <lon,lat> [lon,lat...]",
	Short: "Compute the fastest path visiting the coordinates in order",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().BoolVar(&routeSteps, "steps", false, "include turn-by-turn steps")
	routeCmd.Flags().StringVar(&routeGeometries, "geometries", "polyline", "geometry encoding (polyline, polyline6, geojson)")
	routeCmd.Flags().BoolVar(&routeAnnotations, "annotations", false, "include per-segment annotations")
	routeCmd.Flags().StringSliceVar(&routeExcludes, "exclude", nil, "exclude a profile class (repeatable)")
}

func runRoute(cmd *cobra.Command, args []string) error {
	p := params.NewRoute()
	if err := addCoordinates(p, args); err != nil {
		return err
	}
	p.SetSteps(routeSteps)
	g, err := parseGeometries(routeGeometries)
	if err != nil {
		return err
	}
	if err := p.SetGeometries(g); err != nil {
		return err
	}
	if routeAnnotations {
		if err := p.SetAnnotations(params.AnnotationsAll); err != nil {
			return err
		}
	}
	for _, ex := range routeExcludes {
		if err := p.AddExclude(ex); err != nil {
			return err
		}
	}

	r, err := eng.Route(context.Background(), p)
	if err != nil {
		return err
	}
	return writePayload(r)
}
