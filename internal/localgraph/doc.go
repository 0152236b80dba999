// Package localgraph is the bundled reference backend behind the
// engine's query contract.
//
// It loads a small JSON dataset (nodes, directed edges, metadata) and
// answers all six services with straightforward graph algorithms:
// haversine snapping, Dijkstra by duration, nearest-neighbour trips.
// It makes no routing-quality claims; its job is to make the boundary
// runnable and its behavior observable, including storage modes (plain
// read, mmap, shared memory), snapping hints, disabled feature
// datasets, and deterministic payload bytes.
//
// All payloads are marshaled from structs, so repeating a query against
// the same dataset yields byte-identical results.
package localgraph
