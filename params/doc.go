// Package params provides the per-service request builders.
//
// Route, Table, Nearest, Match and Trip share one base capability set: an
// ordered coordinate sequence with optional per-coordinate snapping
// radius, bearing, approach and hint, plus request-wide snapping options.
// Tile stands apart and takes a tile coordinate triple instead. Route,
// Match and Trip additionally share the route-shaped output options
// (steps, geometry, overview, annotations, waypoint subsequence).
//
// Builders validate eagerly: every setter checks index bounds and value
// domains and fails with a coded error instead of clamping. A built
// Params is owned by the caller, is never consumed by a query, and may be
// reused across queries; it is not safe for concurrent mutation.
//
// Two annotation vocabularies exist side by side on purpose. Route-like
// annotations are an OR-able bit set with none=0; table annotations use
// an inherited scheme where none=1 and all=3. They are distinct wire
// namespaces and must not be unified.
package params
