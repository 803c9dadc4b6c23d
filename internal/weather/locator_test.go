package weather

import (
	"context"
	"errors"
	"testing"
)

func TestStaticLocator(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coordinates
		wantErr bool
	}{
		{"berlin", Coordinates{Latitude: 52.52, Longitude: 13.405}, false},
		{"origin", Coordinates{}, false},
		{"latitude too high", Coordinates{Latitude: 90.1}, true},
		{"longitude too low", Coordinates{Longitude: -180.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StaticLocator{Coords: tt.coords}.Locate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Locate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.coords {
				t.Errorf("Locate() = %+v, want %+v", got, tt.coords)
			}
		})
	}
}

func TestDeniedLocator(t *testing.T) {
	if _, err := (DeniedLocator{}).Locate(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("error = %v, want %v", err, ErrPermissionDenied)
	}
}

func TestGeocodeLocator(t *testing.T) {
	l := &GeocodeLocator{City: "  "}
	if _, err := l.Locate(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("error = %v, want %v", err, ErrPermissionDenied)
	}

	cached := Coordinates{Latitude: 48.85, Longitude: 2.35}
	l = &GeocodeLocator{City: "Paris", resolved: &cached}
	got, err := l.Locate(context.Background())
	if err != nil || got != cached {
		t.Errorf("Locate() = %+v, %v; want cached %+v", got, err, cached)
	}
}
