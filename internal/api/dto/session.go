package dto

type InputsRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BootstrapRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BootstrapResponse struct {
	Start string `json:"start"`
}

type SessionResponse struct {
	Phase      string         `json:"phase"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	Route      *RouteResponse `json:"route,omitempty"`
	FailReason string         `json:"fail_reason,omitempty"`
}
