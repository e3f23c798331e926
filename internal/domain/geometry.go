package domain

import "math"

// Mean Earth radius in meters (spherical approximation).
const earthRadiusMeters = 6371000.0

// Assumed constant travel speed for ETA estimates. A stand-in for a real
// routing-service duration; the estimate is not road-aware.
const assumedSpeedKph = 40.0

// Distance returns the great-circle distance between a and b in meters,
// using the haversine formula on a spherical earth. Symmetric, and zero
// iff a == b.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// EstimateEtaMinutes converts a distance to a travel-time estimate under
// the constant-speed model.
func EstimateEtaMinutes(distanceMeters float64) float64 {
	return distanceMeters / 1000 / assumedSpeedKph * 60
}

// NewBoundingBox returns the componentwise min/max box framing a and b.
// Degenerates to a point box when a == b.
func NewBoundingBox(a, b Coordinate) BoundingBox {
	return BoundingBox{
		Southwest: Coordinate{
			Lat: math.Min(a.Lat, b.Lat),
			Lon: math.Min(a.Lon, b.Lon),
		},
		Northeast: Coordinate{
			Lat: math.Max(a.Lat, b.Lat),
			Lon: math.Max(a.Lon, b.Lon),
		},
	}
}
