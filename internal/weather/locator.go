package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"
)

// ErrPermissionDenied is returned when the player has not shared a location.
var ErrPermissionDenied = errors.New("weather: location permission denied")

// Locator supplies the player's coordinates.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator always returns the same coordinates.
type StaticLocator struct {
	Coords Coordinates
}

// Locate implements Locator.
func (l StaticLocator) Locate(ctx context.Context) (Coordinates, error) {
	if err := validate.Struct(l.Coords); err != nil {
		return Coordinates{}, fmt.Errorf("weather: invalid coordinates: %w", err)
	}
	return l.Coords, nil
}

// DeniedLocator models a player who refused location access.
type DeniedLocator struct{}

// Locate implements Locator.
func (DeniedLocator) Locate(ctx context.Context) (Coordinates, error) {
	return Coordinates{}, ErrPermissionDenied
}

// GeocodeLocator resolves a city through the Google geocoding API once and
// caches the answer.
type GeocodeLocator struct {
	City    string
	Country string

	mu       sync.Mutex
	resolved *Coordinates
}

// NewGeocodeLocator sets the geocoding API key and returns a locator for the city.
func NewGeocodeLocator(apiKey, city, country string) *GeocodeLocator {
	geocoder.ApiKey = apiKey
	return &GeocodeLocator{City: city, Country: country}
}

// Locate implements Locator.
func (l *GeocodeLocator) Locate(ctx context.Context) (Coordinates, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resolved != nil {
		return *l.resolved, nil
	}
	if strings.TrimSpace(l.City) == "" {
		return Coordinates{}, ErrPermissionDenied
	}
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    l.City,
		Country: l.Country,
	})
	if err != nil {
		return Coordinates{}, fmt.Errorf("weather: geocode %s: %w", l.City, err)
	}

	coords := Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}
	l.resolved = &coords
	return coords, nil
}
