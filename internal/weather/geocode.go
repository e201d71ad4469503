package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultGeocodeURL = "http://api.openweathermap.org/geo/1.0/direct"

// GeocodeClient wraps the OpenWeatherMap direct geocoding API.
type GeocodeClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeocodeClient(apiKey string) *GeocodeClient {
	return &GeocodeClient{
		apiKey:  apiKey,
		baseURL: defaultGeocodeURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup resolves a free-form place name to candidate coordinates. An empty
// slice means the location is unknown; transport and payload failures map to
// the upstream sentinels.
func (c *GeocodeClient) Lookup(ctx context.Context, location string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("limit", "1")
	params.Set("appid", c.apiKey)

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create geocoding request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request (%v): %w", err, ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned HTTP %d: %w", resp.StatusCode, ErrUpstreamUnavailable)
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", ErrUpstreamData)
	}
	return places, nil
}
