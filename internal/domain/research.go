package domain

import "time"

// ProviderResult is the tagged outcome of one provider or generator call:
// either a value or an error reason, never both. A zero Err means success.
type ProviderResult[T any] struct {
	Data T      `json:"data,omitempty"`
	Err  string `json:"error,omitempty"`
}

// Ok wraps a successful provider result.
func Ok[T any](data T) ProviderResult[T] {
	return ProviderResult[T]{Data: data}
}

// Failed wraps a provider failure reason.
func Failed[T any](reason string) ProviderResult[T] {
	return ProviderResult[T]{Err: reason}
}

// OK reports whether the result carries data rather than an error marker.
func (r ProviderResult[T]) OK() bool {
	return r.Err == ""
}

// CurrentWeather is the present-day conditions at the destination.
type CurrentWeather struct {
	TempC      float64 `json:"temp_c"`
	Conditions string  `json:"conditions"`
	Humidity   int     `json:"humidity"`
}

// DailyForecast is one day of the destination forecast.
type DailyForecast struct {
	Date       string  `json:"date"`
	HighC      float64 `json:"high_c"`
	LowC       float64 `json:"low_c"`
	Conditions string  `json:"conditions"`
}

// WeatherReport is the normalized weather shape all adapters produce.
type WeatherReport struct {
	Current  CurrentWeather  `json:"current"`
	Forecast []DailyForecast `json:"forecast"`
}

// FlightOffer is a priced flight option from a provider or its fallback.
type FlightOffer struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	Price         float64 `json:"price"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Stops         int     `json:"stops"`
	CabinClass    string  `json:"cabin_class"`
}

// HotelOffer is a priced hotel option from a provider or its fallback.
type HotelOffer struct {
	Name          string   `json:"name"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
}

// ResearchResult is the fan-in of all research lookups for one request.
// Every field is always populated; failures appear as error markers on the
// affected field only.
type ResearchResult struct {
	Destination     string                        `json:"destination"`
	Weather         ProviderResult[WeatherReport] `json:"weather"`
	Flights         ProviderResult[[]FlightOffer] `json:"flights"`
	Hotels          ProviderResult[[]HotelOffer]  `json:"hotels"`
	DestinationInfo ProviderResult[string]        `json:"destination_info"`
	Attractions     ProviderResult[string]        `json:"attractions"`
	ResearchedAt    time.Time                     `json:"researched_at"`
}
