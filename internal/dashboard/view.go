package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"weather-dash/internal/timezone"
	"weather-dash/internal/types"
	"weather-dash/internal/weather"
)

const (
	dateFormat        = "Monday, Jan 2"
	clockFormat       = "15:04"
	forecastDayFormat = "Mon, Jan 2"
	todayLabel        = "Today"
	notAvailable      = "N/A"
)

// View holds the display slots of the dashboard page, already formatted
type View struct {
	Location LocationView   `json:"location"`
	Current  CurrentView    `json:"current"`
	Metrics  MetricsView    `json:"metrics"`
	Date     string         `json:"date" example:"Monday, Jan 6"`
	Time     string         `json:"time" example:"15:04"`
	Unit     types.Unit     `json:"unit" enum:"C,F"`
	Forecast []ForecastView `json:"forecast"`
}

type LocationView struct {
	City    string `json:"city" example:"New York"`
	Country string `json:"country" example:"United States"`
}

type CurrentView struct {
	Temp      int    `json:"temp" example:"19"`
	Unit      string `json:"unit" example:"C"`
	Condition string `json:"condition" example:"Slight rain"`
	HiLow     string `json:"hiLow" example:"H: 24° L: 15°"`
	IconURL   string `json:"iconUrl" example:"https://openweathermap.org/img/wn/10d@4x.png"`
}

type MetricsView struct {
	Visibility string `json:"visibility" example:"10 km"`
	WindSpeed  string `json:"windSpeed" example:"12.5 km/h"`
	Humidity   string `json:"humidity" example:"65%"`
	Pressure   string `json:"pressure" example:"1013.2 hPa"`
	FeelsLike  string `json:"feelsLike" example:"19°C"`
	Cloudiness string `json:"cloudiness" example:"40%"`
	Sunrise    string `json:"sunrise" example:"07:20"`
	Sunset     string `json:"sunset" example:"16:41"`
}

type ForecastView struct {
	Day         string `json:"day" example:"Today"`
	IconURL     string `json:"iconUrl" example:"https://openweathermap.org/img/wn/10d.png"`
	Description string `json:"description" example:"Slight rain"`
	High        *int   `json:"high" example:"24"`
	Low         *int   `json:"low" example:"15"`
}

// Render formats a forecast for display. Temperatures are rounded in Celsius
// before any conversion to Fahrenheit. Clock and date slots use the
// forecast's timezone; the first daily row is labelled "Today".
func Render(point types.ForecastPoint, forecast weather.Forecast, unit types.Unit, now time.Time) View {
	location, err := timezone.LoadLocation(forecast.Timezone)
	if err != nil {
		location = time.UTC
	}
	now = now.In(location)

	current := forecast.Current
	view := View{
		Location: LocationView{
			City:    point.Location.Name,
			Country: point.Location.Country,
		},
		Current: CurrentView{
			Temp:      types.DisplayTemperature(current.Temperature.Celsius, unit),
			Unit:      unit.String(),
			Condition: current.Weather.Description,
			IconURL:   current.Weather.IconURL(types.IconLarge),
		},
		Metrics: MetricsView{
			Visibility: formatVisibility(current.Visibility),
			WindSpeed:  formatNumber(current.Wind.SpeedInKph) + " km/h",
			Humidity:   formatNumber(current.RelativeHumidity) + "%",
			Pressure:   formatNumber(current.SurfacePressure) + " hPa",
			FeelsLike:  fmt.Sprintf("%d°%s", types.DisplayTemperature(current.ApparentTemperature.Celsius, unit), unit),
			Cloudiness: formatNumber(current.CloudCover) + "%",
			Sunrise:    notAvailable,
			Sunset:     notAvailable,
		},
		Date:     now.Format(dateFormat),
		Time:     now.Format(clockFormat),
		Unit:     unit,
		Forecast: make([]ForecastView, 0, len(forecast.Daily)),
	}

	if len(forecast.Daily) > 0 {
		today := forecast.Daily[0]
		view.Current.HiLow = fmt.Sprintf("H: %s L: %s",
			formatDegrees(displayTemperature(today.HighTemperature, unit)),
			formatDegrees(displayTemperature(today.LowTemperature, unit)),
		)
		view.Metrics.Sunrise = formatClock(today.Sunrise, location)
		view.Metrics.Sunset = formatClock(today.Sunset, location)
	}

	for i, day := range forecast.Daily {
		label := todayLabel
		if i > 0 {
			label = day.Date.Format(forecastDayFormat)
		}
		row := ForecastView{
			Day:         label,
			IconURL:     types.UnknownWeather.IconURL(types.IconSmall),
			Description: notAvailable,
			High:        displayTemperature(day.HighTemperature, unit),
			Low:         displayTemperature(day.LowTemperature, unit),
		}
		if day.Weather != nil {
			row.IconURL = day.Weather.IconURL(types.IconSmall)
			row.Description = day.Weather.Description
		}
		view.Forecast = append(view.Forecast, row)
	}

	return view
}

// displayTemperature is nil when the provider had no value for the day
func displayTemperature(t *types.Temperature, unit types.Unit) *int {
	if t == nil {
		return nil
	}
	degrees := types.DisplayTemperature(t.Celsius, unit)
	return &degrees
}

func formatDegrees(degrees *int) string {
	if degrees == nil {
		return notAvailable
	}
	return strconv.Itoa(*degrees) + "°"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatVisibility renders meters as kilometers with at most one decimal
func formatVisibility(meters *float64) string {
	if meters == nil || *meters < 0 {
		return notAvailable
	}
	return formatNumber(math.Round(*meters/100)/10) + " km"
}

func formatClock(t time.Time, location *time.Location) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.In(location).Format(clockFormat)
}
