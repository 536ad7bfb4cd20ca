package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// HTTPFlightService queries an upstream flight search API with a synthetic
// fallback. An empty offer list from the upstream also triggers fallback so
// downstream cost math always has at least one priced offer.
type HTTPFlightService struct {
	cfg      Config
	http     *http.Client
	limiter  *rate.Limiter
	observer Observer
}

func NewHTTPFlightService(cfg Config, observer Observer) *HTTPFlightService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &HTTPFlightService{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.timeout()},
		limiter:  cfg.limiter(),
		observer: observer,
	}
}

type flightSearchResponse struct {
	Offers []struct {
		Airline       string  `json:"airline"`
		FlightNumber  string  `json:"flight_number"`
		Price         float64 `json:"price"`
		DepartureTime string  `json:"departure_time"`
		ArrivalTime   string  `json:"arrival_time"`
		Stops         int     `json:"stops"`
		CabinClass    string  `json:"cabin_class"`
	} `json:"offers"`
}

func (s *HTTPFlightService) Search(ctx context.Context, origin, destination string, start, end time.Time, travelers int) ([]domain.FlightOffer, error) {
	started := time.Now()

	if origin == "" {
		origin = s.cfg.DefaultOrigin
	}

	if s.cfg.FlightsAPIKey == "" {
		s.emit(started, true, "no_api_key")
		return SyntheticFlights(origin, destination, start), nil
	}

	offers, err := s.fetch(ctx, origin, destination, start, end, travelers)
	if err != nil {
		s.emit(started, true, reasonFor(err))
		return SyntheticFlights(origin, destination, start), nil
	}
	if len(offers) == 0 {
		s.emit(started, true, "no_offers")
		return SyntheticFlights(origin, destination, start), nil
	}

	s.emit(started, false, "")
	return offers, nil
}

func (s *HTTPFlightService) fetch(ctx context.Context, origin, destination string, start, end time.Time, travelers int) ([]domain.FlightOffer, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("depart", start.Format(domain.DateLayout))
	q.Set("return", end.Format(domain.DateLayout))
	q.Set("travelers", strconv.Itoa(travelers))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.cfg.FlightsEndpoint+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.FlightsAPIKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight api returned status %d", resp.StatusCode)
	}

	var body flightSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding flight response: %w", err)
	}

	offers := make([]domain.FlightOffer, 0, len(body.Offers))
	for _, o := range body.Offers {
		if o.Price <= 0 {
			continue
		}
		offers = append(offers, domain.FlightOffer{
			Airline:       o.Airline,
			FlightNumber:  o.FlightNumber,
			Price:         o.Price,
			DepartureTime: o.DepartureTime,
			ArrivalTime:   o.ArrivalTime,
			Stops:         o.Stops,
			CabinClass:    o.CabinClass,
		})
	}
	return offers, nil
}

func (s *HTTPFlightService) emit(started time.Time, fallback bool, reason string) {
	s.observer.OnCallComplete(CallEvent{
		Provider:  "flights",
		LatencyMs: time.Since(started).Milliseconds(),
		Fallback:  fallback,
		Reason:    reason,
	})
}

// reasonFor maps an adapter error to a short tag for observer events.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "upstream_error"
	}
}
