package types

import (
	"fmt"
	"sort"
)

// WeatherCode represents a WMO weather code as emitted by Open-Meteo
type WeatherCode int

// Weather code constants
const (
	ClearSky          WeatherCode = 0
	MainlyClear       WeatherCode = 1
	PartlyCloudy      WeatherCode = 2
	Overcast          WeatherCode = 3
	Fog               WeatherCode = 45
	DepositingRimeFog WeatherCode = 48
	DrizzleLight      WeatherCode = 51
	DrizzleModerate   WeatherCode = 53
	DrizzleDense      WeatherCode = 55
	RainSlight        WeatherCode = 61
	RainModerate      WeatherCode = 63
	RainHeavy         WeatherCode = 65
	SnowFallSlight    WeatherCode = 71
	SnowFallModerate  WeatherCode = 73
	SnowFallHeavy     WeatherCode = 75
	Thunderstorm      WeatherCode = 95
)

// Icon sizes understood by the icon host
const (
	IconSmall = ""
	IconLarge = "@4x"
)

const iconBaseURL = "https://openweathermap.org/img/wn"

// WeatherInfo is the description and icon identifier derived from a weather code
type WeatherInfo struct {
	Description string `json:"description" example:"Clear sky" doc:"Human readable condition"`
	Icon        string `json:"icon" example:"01d" doc:"Icon identifier"`
}

// UnknownWeather is returned for codes outside the table
var UnknownWeather = WeatherInfo{Description: "Unknown", Icon: "01d"}

var weatherInfos = map[WeatherCode]WeatherInfo{
	ClearSky:          {"Clear sky", "01d"},
	MainlyClear:       {"Mainly clear", "02d"},
	PartlyCloudy:      {"Partly cloudy", "02d"},
	Overcast:          {"Overcast", "03d"},
	Fog:               {"Fog", "50d"},
	DepositingRimeFog: {"Depositing rime fog", "50d"},
	DrizzleLight:      {"Light drizzle", "09d"},
	DrizzleModerate:   {"Moderate drizzle", "09d"},
	DrizzleDense:      {"Dense drizzle", "09d"},
	RainSlight:        {"Slight rain", "10d"},
	RainModerate:      {"Moderate rain", "10d"},
	RainHeavy:         {"Heavy rain", "10d"},
	SnowFallSlight:    {"Slight snow fall", "13d"},
	SnowFallModerate:  {"Moderate snow fall", "13d"},
	SnowFallHeavy:     {"Heavy snow fall", "13d"},
	Thunderstorm:      {"Thunderstorm", "11d"},
}

// Classify returns the WeatherInfo for a code. It never fails: codes outside
// the table map to UnknownWeather.
func Classify(code int) WeatherInfo {
	if info, ok := weatherInfos[WeatherCode(code)]; ok {
		return info
	}
	return UnknownWeather
}

// Info is shorthand for Classify(int(c))
func (c WeatherCode) Info() WeatherInfo {
	return Classify(int(c))
}

// Known reports whether the code is in the table
func (c WeatherCode) Known() bool {
	_, ok := weatherInfos[c]
	return ok
}

// KnownWeatherCodes returns every code in the table in ascending order
func KnownWeatherCodes() []WeatherCode {
	codes := make([]WeatherCode, 0, len(weatherInfos))
	for code := range weatherInfos {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// IconURL returns the image URL for the icon at the given size
func (w WeatherInfo) IconURL(size string) string {
	return fmt.Sprintf("%s/%s%s.png", iconBaseURL, w.Icon, size)
}

// Weather is a code together with its classification
type Weather struct {
	Code int `json:"code" example:"61" doc:"WMO weather code"`
	WeatherInfo
}

// NewWeather creates a Weather instance from a weather code
func NewWeather(code int) Weather {
	return Weather{
		Code:        code,
		WeatherInfo: Classify(code),
	}
}
