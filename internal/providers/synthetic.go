package providers

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// destinationSeed derives a stable per-destination offset so synthetic
// data varies between destinations but stays deterministic across calls.
func destinationSeed(destination string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(destination))
	return h.Sum32()
}

// SyntheticWeather manufactures a plausible weather report for the trip
// dates. The forecast covers at most seven days.
func SyntheticWeather(destination string, start, end time.Time) domain.WeatherReport {
	seed := destinationSeed(destination)
	baseTemp := 12.0 + float64(seed%16) // 12-27 C

	conditions := []string{"Sunny", "Partly cloudy", "Cloudy", "Light rain"}

	report := domain.WeatherReport{
		Current: domain.CurrentWeather{
			TempC:      baseTemp,
			Conditions: conditions[seed%uint32(len(conditions))],
			Humidity:   int(40 + seed%40),
		},
	}

	days := int(end.Sub(start).Hours() / 24)
	if days > 7 {
		days = 7
	}
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		report.Forecast = append(report.Forecast, domain.DailyForecast{
			Date:       day.Format(domain.DateLayout),
			HighC:      baseTemp + 4 + float64(i%3),
			LowC:       baseTemp - 3 - float64(i%2),
			Conditions: conditions[(seed+uint32(i))%uint32(len(conditions))],
		})
	}
	return report
}

// SyntheticFlights manufactures three priced offers. Prices shift with the
// destination so the cheapest-offer selection stays meaningful.
func SyntheticFlights(origin, destination string, departure time.Time) []domain.FlightOffer {
	seed := destinationSeed(destination)
	bump := float64(seed % 80)
	depDate := departure.Format(domain.DateLayout)

	return []domain.FlightOffer{
		{
			Airline:       "Delta Airlines",
			FlightNumber:  "DL1234",
			Price:         450 + bump,
			DepartureTime: depDate + " 08:30",
			ArrivalTime:   depDate + " 11:45",
			Stops:         0,
			CabinClass:    "Economy",
		},
		{
			Airline:       "American Airlines",
			FlightNumber:  "AA5678",
			Price:         520 + bump,
			DepartureTime: depDate + " 14:20",
			ArrivalTime:   depDate + " 17:35",
			Stops:         0,
			CabinClass:    "Economy",
		},
		{
			Airline:       "United Airlines",
			FlightNumber:  "UA9012",
			Price:         380 + bump,
			DepartureTime: depDate + " 19:45",
			ArrivalTime:   depDate + " 23:00",
			Stops:         1,
			CabinClass:    "Economy",
		},
	}
}

// SyntheticHotels manufactures four offers spanning the comfort range.
func SyntheticHotels(destination string) []domain.HotelOffer {
	seed := destinationSeed(destination)
	bump := float64(seed % 30)

	return []domain.HotelOffer{
		{
			Name:          fmt.Sprintf("Grand Plaza %s", destination),
			PricePerNight: 180 + bump,
			Rating:        4.5,
			Amenities:     []string{"Free WiFi", "Pool", "Fitness Center", "Restaurant"},
		},
		{
			Name:          "City Lodge",
			PricePerNight: 95 + bump,
			Rating:        3.8,
			Amenities:     []string{"Free WiFi", "Breakfast", "24/7 Front Desk"},
		},
		{
			Name:          "Luxury Resort & Spa",
			PricePerNight: 350 + bump,
			Rating:        4.9,
			Amenities:     []string{"Spa & Wellness", "Beach Access", "Pool", "Concierge"},
		},
		{
			Name:          "Boutique Hotel Central",
			PricePerNight: 140 + bump,
			Rating:        4.2,
			Amenities:     []string{"Free WiFi", "Rooftop Bar", "Historic Building"},
		},
	}
}
