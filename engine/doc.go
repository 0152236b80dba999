// Package engine provides the routing engine handle and its query
// surface.
//
// An Engine is constructed from a finalized config.Config and owns a
// loaded routing dataset for its whole lifetime. All six query services
// run against the same handle:
//
//	Route   - fastest path visiting coordinates in order
//	Table   - duration/distance matrix between coordinate subsets
//	Nearest - closest road positions for one coordinate
//	Match   - snap a GPS trace onto the road network
//	Trip    - heuristically optimized visiting order
//	Tile    - debug vector tile of the loaded network
//
// # Construction Flow
//
//  1. config.New() creates a draft and setters shape it
//  2. engine.New() finalizes the draft and loads the dataset
//  3. query methods run concurrently against the handle
//  4. Close() releases the dataset; further use fails
//
// # Backends
//
// The engine delegates query execution to a QueryBackend. New wires the
// built-in file/shared-memory backend; NewWithBackend accepts any
// implementation, which keeps the query validation and error protocol
// testable without a dataset on disk.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Queries against a live engine run
// in parallel; Close waits for none of them and simply flips the handle
// dead, so callers coordinate shutdown themselves.
package engine
