package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wayfarer-dev/wayfarer/internal/cache"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/intelligence"
	"github.com/wayfarer-dev/wayfarer/internal/providers"
)

type researchService struct {
	weather   providers.WeatherService
	flights   providers.FlightService
	hotels    providers.HotelService
	knowledge intelligence.KnowledgeService
	cache     cache.ResearchCache
	origin    string
}

// NewResearchService wires the five research lookups together. Pass
// cache.Noop{} when no cache backend is configured.
func NewResearchService(
	weather providers.WeatherService,
	flights providers.FlightService,
	hotels providers.HotelService,
	knowledge intelligence.KnowledgeService,
	researchCache cache.ResearchCache,
	origin string,
) ResearchService {
	return &researchService{
		weather:   weather,
		flights:   flights,
		hotels:    hotels,
		knowledge: knowledge,
		cache:     researchCache,
		origin:    origin,
	}
}

// Research fans out all five lookups concurrently and joins the results.
// Every field of the result is populated: a failed or panicking lookup
// yields an error marker on its field only, never a missing field and
// never a failed research stage.
func (s *researchService) Research(ctx context.Context, req domain.TripRequest) domain.ResearchResult {
	key := cache.Key(req.Destination, req.StartDate, req.EndDate)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return *cached
	}

	result := domain.ResearchResult{
		Destination:  req.Destination,
		ResearchedAt: time.Now().UTC(),
	}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		defer recoverToMarker(&result.Weather)
		report, err := s.weather.Forecast(ctx, req.Destination, req.StartDate, req.EndDate)
		if err != nil {
			result.Weather = domain.Failed[domain.WeatherReport](err.Error())
			return
		}
		result.Weather = domain.Ok(report)
	}()

	go func() {
		defer wg.Done()
		defer recoverToMarker(&result.Flights)
		offers, err := s.flights.Search(ctx, s.origin, req.Destination, req.StartDate, req.EndDate, req.Travelers)
		if err != nil {
			result.Flights = domain.Failed[[]domain.FlightOffer](err.Error())
			return
		}
		result.Flights = domain.Ok(offers)
	}()

	go func() {
		defer wg.Done()
		defer recoverToMarker(&result.Hotels)
		offers, err := s.hotels.Search(ctx, req.Destination, req.StartDate, req.EndDate, req.Travelers)
		if err != nil {
			result.Hotels = domain.Failed[[]domain.HotelOffer](err.Error())
			return
		}
		result.Hotels = domain.Ok(offers)
	}()

	go func() {
		defer wg.Done()
		defer recoverToMarker(&result.DestinationInfo)
		info, err := s.knowledge.DestinationInfo(ctx, req.Destination, req.Preferences)
		if err != nil {
			result.DestinationInfo = domain.Failed[string](err.Error())
			return
		}
		result.DestinationInfo = domain.Ok(info)
	}()

	go func() {
		defer wg.Done()
		defer recoverToMarker(&result.Attractions)
		attractions, err := s.knowledge.Attractions(ctx, req.Destination, req.Preferences)
		if err != nil {
			result.Attractions = domain.Failed[string](err.Error())
			return
		}
		result.Attractions = domain.Ok(attractions)
	}()

	wg.Wait()

	s.cache.Set(ctx, key, &result)
	return result
}

// recoverToMarker converts a panicking lookup into an error marker on its
// field. Adapters are not supposed to panic; this is the stage's own
// containment line.
func recoverToMarker[T any](field *domain.ProviderResult[T]) {
	if r := recover(); r != nil {
		*field = domain.Failed[T](fmt.Sprintf("lookup panicked: %v", r))
	}
}
