// Package gametime tracks the wall clock for the game and derives whether it
// is night.
package gametime

import (
	"sync"
	"time"
)

// Night covers [NightStartHour, 24) and [0, NightEndHour).
const (
	NightStartHour = 20
	NightEndHour   = 6
)

// DayPeriod is a coarse slice of the day used for scenery.
type DayPeriod string

const (
	PeriodDawn      DayPeriod = "DAWN"
	PeriodMorning   DayPeriod = "MORNING"
	PeriodNoon      DayPeriod = "NOON"
	PeriodAfternoon DayPeriod = "AFTERNOON"
	PeriodEvening   DayPeriod = "EVENING"
	PeriodNight     DayPeriod = "NIGHT"
)

// Oracle is the single source of truth for "is it night". It only changes
// state when Refresh is called.
type Oracle struct {
	mu      sync.RWMutex
	clock   func() time.Time
	current time.Time
	night   bool
}

// NewOracle creates an oracle and refreshes it once. A nil clock falls back
// to the local wall clock.
func NewOracle(clock func() time.Time) *Oracle {
	if clock == nil {
		clock = time.Now
	}
	o := &Oracle{clock: clock}
	o.Refresh()
	return o
}

// Refresh records the current time and recomputes the night flag.
func (o *Oracle) Refresh() {
	now := o.clock()

	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = now
	o.night = IsNightHour(now.Hour())
}

// IsNight returns the flag computed by the last Refresh.
func (o *Oracle) IsNight() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.night
}

// Now returns the time recorded by the last Refresh.
func (o *Oracle) Now() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

// Period returns the day period of the last refreshed time.
func (o *Oracle) Period() DayPeriod {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return PeriodOf(o.current.Hour())
}

// IsNightHour reports whether hour falls in the night window.
func IsNightHour(hour int) bool {
	return hour >= NightStartHour || hour < NightEndHour
}

// PeriodOf maps an hour to its day period.
func PeriodOf(hour int) DayPeriod {
	switch {
	case IsNightHour(hour):
		return PeriodNight
	case hour < 8:
		return PeriodDawn
	case hour < 11:
		return PeriodMorning
	case hour < 13:
		return PeriodNoon
	case hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// Emoji returns an icon for the period.
func (p DayPeriod) Emoji() string {
	switch p {
	case PeriodDawn:
		return "🌅"
	case PeriodMorning, PeriodNoon, PeriodAfternoon:
		return "☀️"
	case PeriodEvening:
		return "🌇"
	default:
		return "🌙"
	}
}
