package types

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a temperature display unit
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// ParseUnit accepts "C", "F", "celsius" or "fahrenheit" in any case
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

func (u Unit) String() string {
	return string(u)
}

// Other returns the opposite unit
func (u Unit) Other() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Round rounds half away from zero. Results beyond the int range saturate at
// math.MaxInt or math.MinInt, and NaN rounds to 0.
func Round(value float64) int {
	r := math.Round(value)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	}
	return int(r)
}

// Convert converts value into the target unit. The source unit is implied by
// the target: converting to Fahrenheit treats value as Celsius and vice versa.
// Rounding happens once, after the whole expression.
func Convert(value float64, target Unit) int {
	if target == Fahrenheit {
		return Round(value*9/5 + 32)
	}
	return Round((value - 32) * 5 / 9)
}

// DisplayTemperature rounds a Celsius reading and, for Fahrenheit, converts
// the already rounded value.
func DisplayTemperature(celsius float64, unit Unit) int {
	rounded := Round(celsius)
	if unit == Fahrenheit {
		return Convert(float64(rounded), Fahrenheit)
	}
	return rounded
}

// Temperature is a reading in both units
type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}
