package localgraph

import (
	"context"
	"encoding/json"

	"github.com/osrmkit/osrmkit/config"
	"github.com/osrmkit/osrmkit/errors"
	"github.com/osrmkit/osrmkit/params"
)

type routeBody struct {
	Routes    []routeOut    `json:"routes"`
	Waypoints []waypointOut `json:"waypoints,omitempty"`
}

// routeOptions is the slice of route-like request options the leg and
// geometry builders need. Route, Match and Trip all satisfy it.
type routeOptions interface {
	Steps() bool
	Geometries() params.Geometries
	Overview() params.Overview
	Annotations() params.Annotations
}

// checkFeatures rejects requests needing a feature dataset that was
// left unloaded.
func (b *Backend) checkFeatures(opts routeOptions) error {
	if opts.Steps() && b.snap.FeatureDisabled(config.FeatureRouteSteps) {
		return errors.Newf(errors.CodeDisabledDataset, "feature dataset %s is disabled", config.FeatureRouteSteps)
	}
	if opts.Overview() != params.OverviewFalse && b.snap.FeatureDisabled(config.FeatureRouteGeometry) {
		return errors.Newf(errors.CodeDisabledDataset, "feature dataset %s is disabled", config.FeatureRouteGeometry)
	}
	return nil
}

// Route computes one route visiting the snapped coordinates in order.
func (b *Backend) Route(ctx context.Context, p *params.Route) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal(err, "query canceled")
	}
	if err := b.checkFeatures(p); err != nil {
		return nil, err
	}

	nodes, snapDists, err := b.snapAll(p.Coordinates())
	if err != nil {
		return nil, err
	}

	route, err := b.buildRoute(nodes, excludeSet(p.Excludes()), p)
	if err != nil {
		return nil, err
	}

	body := routeBody{Routes: []routeOut{*route}}
	if !p.SkipWaypoints() {
		body.Waypoints = b.buildWaypoints(nodes, snapDists, p.GenerateHints())
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Internal(err, "encode route payload")
	}
	return data, nil
}

func (b *Backend) buildWaypoints(nodes []int, snapDists []float64, hints bool) []waypointOut {
	out := make([]waypointOut, len(nodes))
	for i, n := range nodes {
		out[i] = b.waypointFor(n, snapDists[i], hints)
	}
	return out
}

// buildRoute connects the snapped node sequence into one routeOut with
// a leg per consecutive pair.
func (b *Backend) buildRoute(nodes []int, excluded map[string]struct{}, opts routeOptions) (*routeOut, error) {
	route := &routeOut{Legs: make([]legOut, 0, len(nodes)-1)}
	allNodes := []int{nodes[0]}

	for i := 0; i+1 < len(nodes); i++ {
		path, ok := b.g.shortestPath(nodes[i], nodes[i+1], excluded)
		if !ok {
			return nil, errors.Newf(errors.CodeNoRoute, "no route between coordinates %d and %d", i, i+1)
		}
		route.Legs = append(route.Legs, b.buildLeg(nodes[i], path, opts))
		route.Distance += path.distance
		route.Duration += path.duration
		allNodes = append(allNodes, b.pathNodes(nodes[i], path)[1:]...)
	}

	if opts.Overview() != params.OverviewFalse {
		geom, err := b.encodeGeometry(allNodes, opts.Geometries())
		if err != nil {
			return nil, err
		}
		route.Geometry = geom
	}
	return route, nil
}

func (b *Backend) buildLeg(start int, path *pathResult, opts routeOptions) legOut {
	leg := legOut{
		Distance: path.distance,
		Duration: path.duration,
		Steps:    []stepOut{},
	}
	if opts.Steps() {
		leg.Steps = b.buildSteps(start, path)
		leg.Summary = legSummary(leg.Steps)
	}
	if a := opts.Annotations(); a != params.AnnotationsNone {
		leg.Annotation = b.buildAnnotation(start, path, a)
	}
	return leg
}

func (b *Backend) buildSteps(start int, path *pathResult) []stepOut {
	steps := make([]stepOut, 0, len(path.edges)+1)
	for i, ei := range path.edges {
		e := &b.g.edges[ei]
		from := b.g.nodes[b.g.index[e.From]]
		step := stepOut{
			Distance: e.Distance,
			Duration: e.Duration,
			Name:     e.Name,
			Maneuver: maneuverOut{Location: [2]float64{from.Lon, from.Lat}},
		}
		if i == 0 {
			step.Maneuver.Type = "depart"
			step.Maneuver.Instruction = departInstruction(e.Name)
		} else {
			step.Maneuver.Type = "turn"
			step.Maneuver.Instruction = continueInstruction(e.Name)
		}
		steps = append(steps, step)
	}

	last := start
	if n := len(path.edges); n > 0 {
		last = b.g.index[b.g.edges[path.edges[n-1]].To]
	}
	end := b.g.nodes[last]
	steps = append(steps, stepOut{
		Name: b.nodeName(last),
		Maneuver: maneuverOut{
			Type:        "arrive",
			Instruction: "You have arrived at your destination",
			Location:    [2]float64{end.Lon, end.Lat},
		},
	})
	return steps
}

func departInstruction(name string) string {
	if name == "" {
		return "Head out"
	}
	return "Head out on " + name
}

func continueInstruction(name string) string {
	if name == "" {
		return "Continue"
	}
	return "Continue onto " + name
}

// legSummary names the leg by its first and last named streets.
func legSummary(steps []stepOut) string {
	first, last := "", ""
	for _, s := range steps {
		if s.Name == "" {
			continue
		}
		if first == "" {
			first = s.Name
		}
		last = s.Name
	}
	if first == "" {
		return ""
	}
	if first == last {
		return first
	}
	return first + ", " + last
}

func (b *Backend) buildAnnotation(start int, path *pathResult, a params.Annotations) *annotationOut {
	out := &annotationOut{}
	if a&params.AnnotationsNodes != 0 {
		out.Nodes = append(out.Nodes, b.g.nodes[start].ID)
	}
	for _, ei := range path.edges {
		e := &b.g.edges[ei]
		if a&params.AnnotationsDuration != 0 {
			out.Duration = append(out.Duration, e.Duration)
		}
		if a&params.AnnotationsDistance != 0 {
			out.Distance = append(out.Distance, e.Distance)
		}
		if a&params.AnnotationsWeight != 0 {
			out.Weight = append(out.Weight, e.Duration)
		}
		if a&params.AnnotationsDatasources != 0 {
			out.Datasources = append(out.Datasources, 0)
		}
		if a&params.AnnotationsSpeed != 0 {
			speed := 0.0
			if e.Duration > 0 {
				speed = e.Distance / e.Duration
			}
			out.Speed = append(out.Speed, speed)
		}
		if a&params.AnnotationsNodes != 0 {
			out.Nodes = append(out.Nodes, e.To)
		}
	}
	return out
}
