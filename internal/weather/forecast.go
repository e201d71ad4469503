package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// ForecastClient wraps the Open-Meteo forecast API (keyless).
type ForecastClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewForecastClient() *ForecastClient {
	return &ForecastClient{
		baseURL: defaultForecastURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// forecastResponse mirrors the slices this service actually reads. Series
// arrive as parallel arrays keyed by timestamp.
type forecastResponse struct {
	Current struct {
		Temperature       float64 `json:"temperature_2m"`
		Humidity          float64 `json:"relative_humidity_2m"`
		PrecipProbability float64 `json:"precipitation_probability"`
		WindSpeed         float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
	} `json:"hourly"`
	Daily struct {
		Time         []string  `json:"time"`
		TempMax      []float64 `json:"temperature_2m_max"`
		TempMin      []float64 `json:"temperature_2m_min"`
		HumidityMean []float64 `json:"relative_humidity_2m_mean"`
	} `json:"daily"`
}

// Fetch requests current conditions plus hourly and daily series for the
// given coordinates, wind in km/h, timezone auto-detected.
func (c *ForecastClient) Fetch(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,precipitation_probability,wind_speed_10m")
	params.Set("hourly", "temperature_2m")
	params.Set("daily", "temperature_2m_max,temperature_2m_min,relative_humidity_2m_mean")
	params.Set("wind_speed_unit", "kmh")
	params.Set("timezone", "auto")

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request (%v): %w", err, ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned HTTP %d: %w", resp.StatusCode, ErrUpstreamUnavailable)
	}

	var fc forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", ErrUpstreamData)
	}
	return &fc, nil
}
