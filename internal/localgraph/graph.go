package localgraph

import (
	"container/heap"
	"math"
	"sort"

	"github.com/osrmkit/osrmkit/errors"
)

// graph is the in-memory adjacency view of a dataset.
type graph struct {
	nodes []Node
	index map[int64]int
	out   [][]int
	edges []Edge
}

func buildGraph(ds *Dataset) (*graph, error) {
	g := &graph{
		nodes: ds.Nodes,
		index: make(map[int64]int, len(ds.Nodes)),
		out:   make([][]int, len(ds.Nodes)),
		edges: ds.Edges,
	}
	for i, n := range ds.Nodes {
		g.index[n.ID] = i
	}
	for i, e := range ds.Edges {
		from, ok := g.index[e.From]
		if !ok {
			return nil, errors.Newf(errors.CodeEngineLoadFailed, "edge %d references unknown node %d", i, e.From)
		}
		if _, ok := g.index[e.To]; !ok {
			return nil, errors.Newf(errors.CodeEngineLoadFailed, "edge %d references unknown node %d", i, e.To)
		}
		g.out[from] = append(g.out[from], i)
	}
	return g, nil
}

func excludedEdge(e *Edge, excluded map[string]struct{}) bool {
	if len(excluded) == 0 {
		return false
	}
	for _, c := range e.Classes {
		if _, ok := excluded[c]; ok {
			return true
		}
	}
	return false
}

func excludeSet(classes []string) map[string]struct{} {
	if len(classes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		set[c] = struct{}{}
	}
	return set
}

// snap finds the node closest to (lon, lat). A non-negative radius caps
// the snapping distance; radius < 0 means unlimited.
func (g *graph) snap(lon, lat, radius float64) (int, float64, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range g.nodes {
		d := haversine(lon, lat, g.nodes[i].Lon, g.nodes[i].Lat)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	if radius >= 0 && bestDist > radius {
		return 0, 0, false
	}
	return best, bestDist, true
}

// nearest returns up to k nodes ordered by distance from (lon, lat).
func (g *graph) nearest(lon, lat float64, k int) ([]int, []float64) {
	type cand struct {
		node int
		dist float64
	}
	cands := make([]cand, len(g.nodes))
	for i := range g.nodes {
		cands[i] = cand{node: i, dist: haversine(lon, lat, g.nodes[i].Lon, g.nodes[i].Lat)}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return g.nodes[cands[a].node].ID < g.nodes[cands[b].node].ID
	})
	if k > len(cands) {
		k = len(cands)
	}
	nodes := make([]int, k)
	dists := make([]float64, k)
	for i := 0; i < k; i++ {
		nodes[i] = cands[i].node
		dists[i] = cands[i].dist
	}
	return nodes, dists
}

type pqItem struct {
	node int
	cost float64
}

type priorityQueue []pqItem

func (q priorityQueue) Len() int           { return len(q) }
func (q priorityQueue) Less(a, b int) bool { return q[a].cost < q[b].cost }
func (q priorityQueue) Swap(a, b int)      { q[a], q[b] = q[b], q[a] }
func (q *priorityQueue) Push(x any)        { *q = append(*q, x.(pqItem)) }
func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// pathResult is one shortest path, as the edge sequence taken.
type pathResult struct {
	edges    []int
	duration float64
	distance float64
}

// shortestPath runs Dijkstra by duration from one node to another.
func (g *graph) shortestPath(from, to int, excluded map[string]struct{}) (*pathResult, bool) {
	dur, _, prevEdge := g.dijkstra(from, excluded)
	if math.IsInf(dur[to], 1) {
		return nil, false
	}

	var rev []int
	for at := to; at != from; {
		e := prevEdge[at]
		rev = append(rev, e)
		at = g.index[g.edges[e].From]
	}
	res := &pathResult{edges: make([]int, len(rev)), duration: dur[to]}
	for i := range rev {
		e := rev[len(rev)-1-i]
		res.edges[i] = e
		res.distance += g.edges[e].Distance
	}
	return res, true
}

// dijkstra computes duration-optimal costs from one node to every node.
// It returns durations, distances along the chosen paths, and the edge
// that reached each node.
func (g *graph) dijkstra(from int, excluded map[string]struct{}) (dur, dist []float64, prevEdge []int) {
	n := len(g.nodes)
	dur = make([]float64, n)
	dist = make([]float64, n)
	prevEdge = make([]int, n)
	done := make([]bool, n)
	for i := range dur {
		dur[i] = math.Inf(1)
		dist[i] = math.Inf(1)
		prevEdge[i] = -1
	}
	dur[from] = 0
	dist[from] = 0

	q := &priorityQueue{{node: from}}
	for q.Len() > 0 {
		item := heap.Pop(q).(pqItem)
		if done[item.node] {
			continue
		}
		done[item.node] = true
		for _, ei := range g.out[item.node] {
			e := &g.edges[ei]
			if excludedEdge(e, excluded) {
				continue
			}
			next := g.index[e.To]
			cost := dur[item.node] + e.Duration
			if cost < dur[next] {
				dur[next] = cost
				dist[next] = dist[item.node] + e.Distance
				prevEdge[next] = ei
				heap.Push(q, pqItem{node: next, cost: cost})
			}
		}
	}
	return dur, dist, prevEdge
}
