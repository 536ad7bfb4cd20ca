package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// HTTPHotelService queries an upstream hotel search API with a synthetic
// fallback, mirroring the flight adapter contract.
type HTTPHotelService struct {
	cfg      Config
	http     *http.Client
	limiter  *rate.Limiter
	observer Observer
}

func NewHTTPHotelService(cfg Config, observer Observer) *HTTPHotelService {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &HTTPHotelService{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.timeout()},
		limiter:  cfg.limiter(),
		observer: observer,
	}
}

type hotelSearchResponse struct {
	Hotels []struct {
		Name          string   `json:"name"`
		PricePerNight float64  `json:"price_per_night"`
		Rating        float64  `json:"rating"`
		Amenities     []string `json:"amenities"`
	} `json:"hotels"`
}

func (s *HTTPHotelService) Search(ctx context.Context, destination string, checkIn, checkOut time.Time, guests int) ([]domain.HotelOffer, error) {
	started := time.Now()

	if s.cfg.HotelsAPIKey == "" {
		s.emit(started, true, "no_api_key")
		return SyntheticHotels(destination), nil
	}

	offers, err := s.fetch(ctx, destination, checkIn, checkOut, guests)
	if err != nil {
		s.emit(started, true, reasonFor(err))
		return SyntheticHotels(destination), nil
	}
	if len(offers) == 0 {
		s.emit(started, true, "no_offers")
		return SyntheticHotels(destination), nil
	}

	s.emit(started, false, "")
	return offers, nil
}

func (s *HTTPHotelService) fetch(ctx context.Context, destination string, checkIn, checkOut time.Time, guests int) ([]domain.HotelOffer, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("destination", destination)
	q.Set("check_in", checkIn.Format(domain.DateLayout))
	q.Set("check_out", checkOut.Format(domain.DateLayout))
	q.Set("guests", strconv.Itoa(guests))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.cfg.HotelsEndpoint+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.HotelsAPIKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel api returned status %d", resp.StatusCode)
	}

	var body hotelSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding hotel response: %w", err)
	}

	offers := make([]domain.HotelOffer, 0, len(body.Hotels))
	for _, h := range body.Hotels {
		if h.PricePerNight <= 0 {
			continue
		}
		offers = append(offers, domain.HotelOffer{
			Name:          h.Name,
			PricePerNight: h.PricePerNight,
			Rating:        h.Rating,
			Amenities:     h.Amenities,
		})
	}
	return offers, nil
}

func (s *HTTPHotelService) emit(started time.Time, fallback bool, reason string) {
	s.observer.OnCallComplete(CallEvent{
		Provider:  "hotels",
		LatencyMs: time.Since(started).Milliseconds(),
		Fallback:  fallback,
		Reason:    reason,
	})
}
