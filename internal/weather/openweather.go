package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the OpenWeatherMap current-conditions endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

var (
	// ErrMalformedPayload is returned when the provider answers with a body
	// that does not carry the fields the game needs.
	ErrMalformedPayload = errors.New("weather: malformed provider payload")
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("weather: api key is not configured")
)

var validate = validator.New()

// Client fetches current conditions from OpenWeatherMap by coordinates.
type Client struct {
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithBackoff overrides the retry policy. The default does not retry.
func WithBackoff(b BackoffConfig) Option {
	return func(c *Client) { c.httpCfg.Backoff = b }
}

// NewClient creates an OpenWeatherMap client.
func NewClient(client *http.Client, apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newCircuitBreaker("openweather"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type payload struct {
	Weather []struct {
		ID          int    `json:"id" validate:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather" validate:"required,min=1,dive"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main" validate:"required"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind" validate:"required"`
}

// Current returns the weather at the given coordinates.
func (c *Client) Current(ctx context.Context, coords Coordinates) (Data, error) {
	if c.apiKey == "" {
		return Data{}, ErrMissingAPIKey
	}
	if err := validate.Struct(coords); err != nil {
		return Data{}, fmt.Errorf("weather: invalid coordinates: %w", err)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
		values.Set("appid", c.apiKey)
		values.Set("units", "metric")

		return http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequest(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return Data{}, fmt.Errorf("weather: fetch current: %w", err)
	}
	defer resp.Body.Close()

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return parsePayload(body)
}

func parsePayload(body payload) (Data, error) {
	if err := validate.Struct(body); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	w := body.Weather[0]
	return Data{
		Type:        TypeFromCode(w.ID),
		Code:        w.ID,
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
		Description: w.Description,
		Icon:        w.Icon,
	}, nil
}
