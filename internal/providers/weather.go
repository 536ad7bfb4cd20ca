package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// HTTPWeatherService queries an upstream weather API and falls back to
// synthetic data when the upstream is unreachable or misbehaving.
type HTTPWeatherService struct {
	cfg      Config
	http     *http.Client
	limiter  *rate.Limiter
	observer Observer
}

func NewHTTPWeatherService(cfg Config, observer Observer) *HTTPWeatherService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &HTTPWeatherService{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.timeout()},
		limiter:  cfg.limiter(),
		observer: observer,
	}
}

type weatherResponse struct {
	Current struct {
		TempC      float64 `json:"temp_c"`
		Conditions string  `json:"conditions"`
		Humidity   int     `json:"humidity"`
	} `json:"current"`
	Forecast []struct {
		Date       string  `json:"date"`
		HighC      float64 `json:"high_c"`
		LowC       float64 `json:"low_c"`
		Conditions string  `json:"conditions"`
	} `json:"forecast"`
}

// Forecast returns weather for the trip window. It never returns an error
// from transport failures; synthetic data is substituted instead.
func (s *HTTPWeatherService) Forecast(ctx context.Context, destination string, start, end time.Time) (domain.WeatherReport, error) {
	started := time.Now()

	if s.cfg.WeatherAPIKey == "" {
		s.emit(started, true, "no_api_key")
		return SyntheticWeather(destination, start, end), nil
	}

	report, err := s.fetch(ctx, destination, start, end)
	if err != nil {
		s.emit(started, true, reasonFor(err))
		return SyntheticWeather(destination, start, end), nil
	}

	s.emit(started, false, "")
	return report, nil
}

func (s *HTTPWeatherService) fetch(ctx context.Context, destination string, start, end time.Time) (domain.WeatherReport, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.WeatherReport{}, err
	}

	q := url.Values{}
	q.Set("destination", destination)
	q.Set("start", start.Format(domain.DateLayout))
	q.Set("end", end.Format(domain.DateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.cfg.WeatherEndpoint+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return domain.WeatherReport{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.WeatherAPIKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return domain.WeatherReport{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherReport{}, fmt.Errorf("weather api returned status %d", resp.StatusCode)
	}

	var body weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.WeatherReport{}, fmt.Errorf("decoding weather response: %w", err)
	}

	report := domain.WeatherReport{
		Current: domain.CurrentWeather{
			TempC:      body.Current.TempC,
			Conditions: body.Current.Conditions,
			Humidity:   body.Current.Humidity,
		},
	}
	for _, f := range body.Forecast {
		report.Forecast = append(report.Forecast, domain.DailyForecast{
			Date:       f.Date,
			HighC:      f.HighC,
			LowC:       f.LowC,
			Conditions: f.Conditions,
		})
	}
	return report, nil
}

func (s *HTTPWeatherService) emit(started time.Time, fallback bool, reason string) {
	s.observer.OnCallComplete(CallEvent{
		Provider:  "weather",
		LatencyMs: time.Since(started).Milliseconds(),
		Fallback:  fallback,
		Reason:    reason,
	})
}
