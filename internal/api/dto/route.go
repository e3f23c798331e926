package dto

type RouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ViewportResponse struct {
	Southwest CoordinateResponse `json:"southwest"`
	Northeast CoordinateResponse `json:"northeast"`
}

type RouteResponse struct {
	Start          CoordinateResponse `json:"start"`
	End            CoordinateResponse `json:"end"`
	DistanceMeters float64            `json:"distance_meters"`
	EtaMinutes     float64            `json:"eta_minutes"`
	Viewport       ViewportResponse   `json:"viewport"`
}
