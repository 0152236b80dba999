package params

// Route describes one Route service request: the fastest path visiting
// the coordinates in order.
type Route struct {
	Base
	routeLike
}

// NewRoute creates a Route request builder with default options.
func NewRoute() *Route {
	return &Route{Base: newBase(), routeLike: newRouteLike()}
}
