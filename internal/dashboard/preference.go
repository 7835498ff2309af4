package dashboard

import (
	"sync"

	"weather-dash/internal/types"
)

// UnitPreference is the display unit selected by the user. It starts as
// Celsius and only changes through Set or Toggle.
type UnitPreference struct {
	mu   sync.RWMutex
	unit types.Unit
}

func NewUnitPreference(initial types.Unit) *UnitPreference {
	if initial != types.Fahrenheit {
		initial = types.Celsius
	}
	return &UnitPreference{unit: initial}
}

func (p *UnitPreference) Get() types.Unit {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unit
}

// Set stores unit and reports whether the preference changed
func (p *UnitPreference) Set(unit types.Unit) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unit == unit {
		return false
	}
	p.unit = unit
	return true
}

// Toggle flips between Celsius and Fahrenheit and returns the new unit
func (p *UnitPreference) Toggle() types.Unit {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unit = p.unit.Other()
	return p.unit
}
