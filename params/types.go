package params

// Snapping controls which edges a coordinate may snap to.
type Snapping string

const (
	SnappingDefault Snapping = "default"
	SnappingAny     Snapping = "any"
)

// Approach restricts the side of the road a route may arrive on.
type Approach string

const (
	ApproachCurb         Approach = "curb"
	ApproachUnrestricted Approach = "unrestricted"
	ApproachOpposite     Approach = "opposite"
)

// Geometries selects the encoding of returned route geometry.
type Geometries string

const (
	GeometriesPolyline  Geometries = "polyline"
	GeometriesPolyline6 Geometries = "polyline6"
	GeometriesGeoJSON   Geometries = "geojson"
)

// Overview selects how much route geometry is returned.
type Overview string

const (
	OverviewSimplified Overview = "simplified"
	OverviewFull       Overview = "full"
	OverviewFalse      Overview = "false"
)

// Annotations is the OR-able bit set of per-segment metrics for
// route-shaped responses (Route, Match, Trip).
type Annotations uint32

const (
	AnnotationsNone        Annotations = 0
	AnnotationsDuration    Annotations = 1
	AnnotationsNodes       Annotations = 2
	AnnotationsDistance    Annotations = 4
	AnnotationsWeight      Annotations = 8
	AnnotationsDatasources Annotations = 16
	AnnotationsSpeed       Annotations = 32
	AnnotationsAll         Annotations = 63
)

// TableAnnotations selects which matrices a Table response carries.
// The value scheme is inherited wire vocabulary and deliberately not
// aligned with Annotations: none is 1, all is 3. Use the Has* helpers
// instead of testing bits directly.
type TableAnnotations uint32

const (
	TableAnnotationsNone     TableAnnotations = 1
	TableAnnotationsDuration TableAnnotations = 2
	TableAnnotationsDistance TableAnnotations = 4
	TableAnnotationsAll      TableAnnotations = 3
)

// HasDuration reports whether the duration matrix was requested.
func (a TableAnnotations) HasDuration() bool {
	return a == TableAnnotationsAll || a&TableAnnotationsDuration != 0
}

// HasDistance reports whether the distance matrix was requested.
func (a TableAnnotations) HasDistance() bool {
	return a == TableAnnotationsAll || a&TableAnnotationsDistance != 0
}

// Gaps controls how a Match query treats time gaps in the trace.
type Gaps string

const (
	GapsSplit  Gaps = "split"
	GapsIgnore Gaps = "ignore"
)

// TripSource fixes the starting point of a Trip.
type TripSource string

const (
	TripSourceAny   TripSource = "any"
	TripSourceFirst TripSource = "first"
)

// TripDestination fixes the end point of a Trip.
type TripDestination string

const (
	TripDestinationAny  TripDestination = "any"
	TripDestinationLast TripDestination = "last"
)

// FallbackCoordinate selects which coordinate a Table fallback estimate
// is measured from.
type FallbackCoordinate string

const (
	FallbackCoordinateInput   FallbackCoordinate = "input"
	FallbackCoordinateSnapped FallbackCoordinate = "snapped"
)
