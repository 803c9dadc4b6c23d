package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pixelpet/internal/pet"
	"pixelpet/internal/weather"
)

// DefaultPath is where Load looks for the YAML file when none is given.
const DefaultPath = "pixelpet.yaml"

var validate = validator.New()

type Config struct {
	Pet     PetConfig     `yaml:"pet"`
	Game    GameConfig    `yaml:"game"`
	Weather WeatherConfig `yaml:"weather"`
	Server  ServerConfig  `yaml:"server"`
}

type PetConfig struct {
	Name string `yaml:"name" validate:"required,max=32"`
	Kind string `yaml:"kind" validate:"required,max=32"`
}

type GameConfig struct {
	TickInterval time.Duration `yaml:"tick_interval" validate:"gt=0"`
}

type WeatherConfig struct {
	APIKey     string        `yaml:"api_key"`
	BaseURL    string        `yaml:"base_url" validate:"omitempty,url"`
	Interval   time.Duration `yaml:"interval" validate:"gt=0"`
	MaxRetries int           `yaml:"max_retries" validate:"gte=0,lte=10"`

	// Either fixed coordinates or a city to geocode. Neither means the
	// player has not shared a location.
	Latitude       *float64 `yaml:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `yaml:"longitude" validate:"omitempty,gte=-180,lte=180"`
	City           string   `yaml:"city"`
	Country        string   `yaml:"country"`
	GeocoderAPIKey string   `yaml:"geocoder_api_key"`
}

type ServerConfig struct {
	Port string `yaml:"port" validate:"required,numeric"`
}

func defaults() *Config {
	return &Config{
		Pet: PetConfig{
			Name: pet.DefaultPetName,
			Kind: pet.DefaultPetKind,
		},
		Game: GameConfig{
			TickInterval: time.Minute,
		},
		Weather: WeatherConfig{
			BaseURL:  weather.DefaultBaseURL,
			Interval: 30 * time.Minute,
		},
		Server: ServerConfig{
			Port: "8080",
		},
	}
}

// Load reads defaults, then the YAML file at path if it exists, then .env,
// then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, envPath string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if (cfg.Weather.Latitude == nil) != (cfg.Weather.Longitude == nil) {
		return nil, errors.New("invalid config: latitude and longitude must be set together")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Pet.Name = getenvDefault("PET_NAME", cfg.Pet.Name)
	cfg.Pet.Kind = getenvDefault("PET_KIND", cfg.Pet.Kind)
	cfg.Weather.APIKey = getenvDefault("OPENWEATHER_API_KEY", cfg.Weather.APIKey)
	cfg.Weather.City = getenvDefault("PIXELPET_CITY", cfg.Weather.City)
	cfg.Weather.Country = getenvDefault("PIXELPET_COUNTRY", cfg.Weather.Country)
	cfg.Weather.GeocoderAPIKey = getenvDefault("GEOCODER_API_KEY", cfg.Weather.GeocoderAPIKey)
	cfg.Server.Port = getenvDefault("PORT", cfg.Server.Port)

	var err error
	if cfg.Game.TickInterval, err = getenvDuration("TICK_INTERVAL", cfg.Game.TickInterval); err != nil {
		return err
	}
	if cfg.Weather.Interval, err = getenvDuration("WEATHER_INTERVAL", cfg.Weather.Interval); err != nil {
		return err
	}
	if cfg.Weather.Latitude, err = getenvFloat("PIXELPET_LAT", cfg.Weather.Latitude); err != nil {
		return err
	}
	if cfg.Weather.Longitude, err = getenvFloat("PIXELPET_LON", cfg.Weather.Longitude); err != nil {
		return err
	}
	return nil
}

// Locator picks how the player's position is found: fixed coordinates win
// over a city, and neither yields a locator that reports denied permission.
func (c WeatherConfig) Locator() weather.Locator {
	switch {
	case c.Latitude != nil && c.Longitude != nil:
		return weather.StaticLocator{Coords: weather.Coordinates{Latitude: *c.Latitude, Longitude: *c.Longitude}}
	case c.City != "":
		return weather.NewGeocodeLocator(c.GeocoderAPIKey, c.City, c.Country)
	default:
		return weather.DeniedLocator{}
	}
}

// Backoff returns the retry policy for the weather client.
func (c WeatherConfig) Backoff() weather.BackoffConfig {
	return weather.BackoffConfig{
		MaxRetries:      c.MaxRetries,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvFloat(key string, def *float64) (*float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &f, nil
}
