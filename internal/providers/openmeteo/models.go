package openmeteo

// GeocodingAPIResponse is the body of /v1/search. Results is absent when
// nothing matched.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
}

type ElevationAPIResponse struct {
	Elevation []float64 `json:"elevation"`
}

// ForecastAPIResponse is the body of /v1/forecast. Daily weather codes and
// temperatures are null for days the model does not cover.
type ForecastAPIResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GenerationtimeMs     float64 `json:"generationtime_ms"`
	UtcOffsetSeconds     int     `json:"utc_offset_seconds"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	Elevation            float64 `json:"elevation"`
	CurrentUnits         struct {
		Time                string `json:"time"`
		Temperature2M       string `json:"temperature_2m"`
		RelativeHumidity2M  string `json:"relative_humidity_2m"`
		ApparentTemperature string `json:"apparent_temperature"`
		SurfacePressure     string `json:"surface_pressure"`
		WindSpeed10M        string `json:"wind_speed_10m"`
		CloudCover          string `json:"cloud_cover"`
		Visibility          string `json:"visibility"`
	} `json:"current_units"`
	Current struct {
		Time                string   `json:"time"`
		Interval            int      `json:"interval"`
		Temperature2M       float64  `json:"temperature_2m"`
		RelativeHumidity2M  float64  `json:"relative_humidity_2m"`
		ApparentTemperature float64  `json:"apparent_temperature"`
		WeatherCode         int      `json:"weather_code"`
		SurfacePressure     float64  `json:"surface_pressure"`
		WindSpeed10M        float64  `json:"wind_speed_10m"`
		WindDirection10M    float64  `json:"wind_direction_10m"`
		CloudCover          float64  `json:"cloud_cover"`
		Visibility          *float64 `json:"visibility"`
	} `json:"current"`
	Daily struct {
		Time             []string   `json:"time"`
		WeatherCode      []*int     `json:"weather_code"`
		Temperature2MMax []*float64 `json:"temperature_2m_max"`
		Temperature2MMin []*float64 `json:"temperature_2m_min"`
		Sunrise          []string   `json:"sunrise"`
		Sunset           []string   `json:"sunset"`
	} `json:"daily"`
}
