package domain

// Immutable geographic position (latitude, longitude) in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinate lies within [-90,90] x [-180,180].
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// BoundingBox is the minimal axis-aligned lat/lon rectangle framing two
// points, used to aim the map camera. Southwest is componentwise <=
// Northeast. No antimeridian handling.
type BoundingBox struct {
	Southwest Coordinate
	Northeast Coordinate
}
