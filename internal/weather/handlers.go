package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/agricare/agri-backend/internal/utils"
)

// Handler adapts the aggregation service to the /weather-forecast route.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Forecast handles GET /weather-forecast?location=<name>.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	summary, err := h.service.Forecast(r.Context(), location)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingLocation):
			utils.Message(w, http.StatusBadRequest, "Location parameter is required")
		case errors.Is(err, ErrNotConfigured):
			h.logger.Error("weather: API key missing")
			utils.Message(w, http.StatusInternalServerError, "Weather API key is not configured on the server")
		case errors.Is(err, ErrLocationNotFound):
			utils.Message(w, http.StatusNotFound, fmt.Sprintf("Could not find location: %s", location))
		case errors.Is(err, ErrUpstreamUnavailable):
			h.logger.Error("weather: upstream unavailable", "error", err)
			utils.Message(w, http.StatusServiceUnavailable, "Failed to fetch weather data")
		case errors.Is(err, ErrUpstreamData):
			h.logger.Error("weather: bad upstream payload", "error", err)
			utils.Message(w, http.StatusInternalServerError, "Error processing weather data")
		default:
			h.logger.Error("weather: forecast failed", "error", err)
			utils.Message(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, summary)
}
