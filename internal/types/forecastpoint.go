package types

// ForecastPoint is a resolved place the dashboard can fetch a forecast for
type ForecastPoint struct {
	Coordinates Coords       `json:"coordinates"`
	Elevation   Elevation    `json:"elevation"`
	Location    LocationInfo `json:"location"`
	Timezone    string       `json:"timezone" example:"America/New_York" doc:"IANA timezone"`
}
