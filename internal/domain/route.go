package domain

// RouteResult is the outcome of one fully resolved search: both endpoint
// coordinates plus the derived straight-line geometry. It exists only when
// both endpoints geocoded successfully and is replaced wholesale on the
// next search or clear; nothing is cached between searches.
type RouteResult struct {
	Start          Coordinate
	End            Coordinate
	DistanceMeters float64
	EtaMinutes     float64
	Viewport       BoundingBox
}
