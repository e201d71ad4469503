package weather

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	dailyDays   = 7
	hourlyHours = 24

	// placeholderAPIKey is the stand-in value a fresh deployment ships with;
	// treated the same as no key at all.
	placeholderAPIKey = "YOUR_OPENWEATHERMAP_API_KEY"
)

// advisoryTips is the static agronomic advice attached to every successful
// forecast. Not derived from the data.
var advisoryTips = []string{
	"Adjust irrigation if heavy rain is forecast.",
	"Avoid pesticide spraying before rain.",
	"Plan harvest on dry days for optimal quality.",
}

// Service composes the two upstream calls (geocode the place name, then
// fetch the forecast for its coordinates) and reshapes the result. No
// caching and no retry: one upstream failure fails the request.
type Service struct {
	apiKey   string
	geocode  *GeocodeClient
	forecast *ForecastClient
}

func NewService(apiKey string) *Service {
	return &Service{
		apiKey:   apiKey,
		geocode:  NewGeocodeClient(apiKey),
		forecast: NewForecastClient(),
	}
}

// Forecast resolves location and builds the summary. Errors are the
// package sentinels, ready for status mapping in the handler.
func (s *Service) Forecast(ctx context.Context, location string) (*Summary, error) {
	if strings.TrimSpace(location) == "" {
		return nil, ErrMissingLocation
	}
	if s.apiKey == "" || s.apiKey == placeholderAPIKey {
		return nil, ErrNotConfigured
	}

	places, err := s.geocode.Lookup(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, location)
	}
	place := places[0]

	fc, err := s.forecast.Fetch(ctx, place.Lat, place.Lon)
	if err != nil {
		return nil, err
	}

	daily, err := reshapeDaily(fc)
	if err != nil {
		return nil, err
	}
	hourly, err := reshapeHourly(fc)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Location: place.Label(),
		Current: Current{
			Temp:          round(fc.Current.Temperature),
			Humidity:      round(fc.Current.Humidity),
			Precipitation: round(fc.Current.PrecipProbability),
			Wind:          math.Round(fc.Current.WindSpeed*10) / 10,
		},
		Daily:  daily,
		Hourly: hourly,
		Tips:   advisoryTips,
	}, nil
}

func reshapeDaily(fc *forecastResponse) ([]Day, error) {
	d := fc.Daily
	if len(d.Time) < dailyDays || len(d.TempMax) < dailyDays ||
		len(d.TempMin) < dailyDays || len(d.HumidityMean) < dailyDays {
		return nil, fmt.Errorf("daily series too short: %w", ErrUpstreamData)
	}

	days := make([]Day, 0, dailyDays)
	for i := 0; i < dailyDays; i++ {
		date, err := time.Parse("2006-01-02", d.Time[i])
		if err != nil {
			return nil, fmt.Errorf("bad daily timestamp %q: %w", d.Time[i], ErrUpstreamData)
		}
		days = append(days, Day{
			Date:     d.Time[i],
			DayName:  date.Format("Mon"),
			MaxTemp:  round(d.TempMax[i]),
			MinTemp:  round(d.TempMin[i]),
			Humidity: round(d.HumidityMean[i]),
		})
	}
	return days, nil
}

func reshapeHourly(fc *forecastResponse) ([]Hour, error) {
	h := fc.Hourly
	if len(h.Time) < hourlyHours || len(h.Temperature) < hourlyHours {
		return nil, fmt.Errorf("hourly series too short: %w", ErrUpstreamData)
	}

	hours := make([]Hour, 0, hourlyHours)
	for i := 0; i < hourlyHours; i++ {
		ts, err := time.Parse("2006-01-02T15:04", h.Time[i])
		if err != nil {
			return nil, fmt.Errorf("bad hourly timestamp %q: %w", h.Time[i], ErrUpstreamData)
		}
		hours = append(hours, Hour{
			Hour: fmt.Sprintf("%02d:00", ts.Hour()),
			Temp: round(h.Temperature[i]),
		})
	}
	return hours, nil
}

func round(v float64) int {
	return int(math.Round(v))
}
