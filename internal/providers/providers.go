// Package providers holds the outbound adapters for weather, flight, and
// hotel data. Every adapter honors the same contract: it never fails past
// its own boundary. Transport or parsing errors are absorbed and replaced
// with deterministic synthetic data, so a slow or broken upstream cannot
// poison a planning request.
package providers

import (
	"context"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// WeatherService looks up current conditions and a forecast for a destination.
type WeatherService interface {
	Forecast(ctx context.Context, destination string, start, end time.Time) (domain.WeatherReport, error)
}

// FlightService searches priced flight offers for a destination and date range.
type FlightService interface {
	Search(ctx context.Context, origin, destination string, start, end time.Time, travelers int) ([]domain.FlightOffer, error)
}

// HotelService searches priced hotel offers for a destination and stay.
type HotelService interface {
	Search(ctx context.Context, destination string, checkIn, checkOut time.Time, guests int) ([]domain.HotelOffer, error)
}

// Config holds adapter endpoints and credentials. An empty API key puts
// that adapter in synthetic-only mode, which keeps the system fully
// usable offline.
type Config struct {
	WeatherEndpoint string
	WeatherAPIKey   string
	FlightsEndpoint string
	FlightsAPIKey   string
	HotelsEndpoint  string
	HotelsAPIKey    string
	DefaultOrigin   string
	TimeoutMs       int
	RatePerSecond   float64
}

// DefaultConfig returns a Config with all adapters in synthetic-only mode.
func DefaultConfig() Config {
	return Config{
		WeatherEndpoint: "https://api.wayfarer-weather.dev",
		FlightsEndpoint: "https://api.wayfarer-flights.dev",
		HotelsEndpoint:  "https://api.wayfarer-hotels.dev",
		DefaultOrigin:   "JFK",
		TimeoutMs:       8000,
		RatePerSecond:   10,
	}
}

// LoadConfig reads provider configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WAYFARER_WEATHER_ENDPOINT"); v != "" {
		cfg.WeatherEndpoint = v
	}
	if v := os.Getenv("WAYFARER_WEATHER_API_KEY"); v != "" {
		cfg.WeatherAPIKey = v
	}
	if v := os.Getenv("WAYFARER_FLIGHTS_ENDPOINT"); v != "" {
		cfg.FlightsEndpoint = v
	}
	if v := os.Getenv("WAYFARER_FLIGHTS_API_KEY"); v != "" {
		cfg.FlightsAPIKey = v
	}
	if v := os.Getenv("WAYFARER_HOTELS_ENDPOINT"); v != "" {
		cfg.HotelsEndpoint = v
	}
	if v := os.Getenv("WAYFARER_HOTELS_API_KEY"); v != "" {
		cfg.HotelsAPIKey = v
	}
	if v := os.Getenv("WAYFARER_FLIGHT_ORIGIN"); v != "" {
		cfg.DefaultOrigin = v
	}
	if v := os.Getenv("WAYFARER_PROVIDER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("WAYFARER_PROVIDER_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RatePerSecond = f
		}
	}

	return cfg
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// limiter builds the outbound rate limiter for one adapter. Upstream APIs
// meter by key, so each adapter throttles its own live calls.
func (c Config) limiter() *rate.Limiter {
	r := c.RatePerSecond
	if r <= 0 {
		r = 10
	}
	return rate.NewLimiter(rate.Limit(r), int(r))
}
