package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string `json:"name" example:"New York" doc:"Location name"`
	Region      string `json:"region" example:"New York" doc:"First-level administrative area"`
	Country     string `json:"country" example:"United States" doc:"Country name"`
	CountryCode string `json:"country_code" example:"US" doc:"ISO country code"`
}
