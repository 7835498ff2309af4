package types

import "math"

const KphToMph = 0.621371

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

type Wind struct {
	SpeedInKph        float64 `json:"speed_kph"`
	SpeedInMph        float64 `json:"speed_mph"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

func NewWindFromKph(speedInKph, directionDegrees float64) Wind {
	return Wind{
		SpeedInKph:        speedInKph,
		SpeedInMph:        speedInKph * KphToMph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: Cardinal(directionDegrees),
	}
}

// Cardinal maps a bearing in degrees onto a 16-point compass. Bearings
// outside [0, 360) are normalized first; NaN and infinities have no direction.
func Cardinal(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return ""
	}
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	index := int(math.Round(degrees/22.5)) % 16
	return cardinals[index]
}
