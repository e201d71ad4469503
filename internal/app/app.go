package app

import (
	"log/slog"
	"net/http"

	"github.com/agricare/agri-backend/internal/auth"
	"github.com/agricare/agri-backend/internal/config"
	"github.com/agricare/agri-backend/internal/middleware"
	"github.com/agricare/agri-backend/internal/prediction"
	"github.com/agricare/agri-backend/internal/upload"
	"github.com/agricare/agri-backend/internal/weather"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// App is the process-wide application context: every handler and its
// dependencies, built once at startup.
type App struct {
	cfg      *config.Config
	sessions *auth.Sessions
	uploads  *upload.Store

	auth       *auth.Handler
	prediction *prediction.Handler
	weather    *weather.Handler
}

// New wires the handlers. The user store is injected so tests can swap the
// database out.
func New(cfg *config.Config, users auth.UserStore, logger *slog.Logger) *App {
	sessions := auth.NewSessions(cfg.SessionSecret)
	uploads := upload.NewStore(cfg.UploadDir)

	return &App{
		cfg:        cfg,
		sessions:   sessions,
		uploads:    uploads,
		auth:       auth.NewHandler(users, sessions, uploads, logger),
		prediction: prediction.NewHandler(users, sessions, logger),
		weather:    weather.NewHandler(weather.NewService(cfg.OpenWeatherAPIKey), logger),
	}
}

// Router assembles the HTTP surface.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORS(a.cfg.AllowedOrigins))

	r.Get("/", a.auth.Index)
	r.Post("/register", a.auth.Register)
	r.Post("/login", a.auth.Login)
	r.Get("/logout", a.auth.Logout)

	r.Route("/prediction", func(r chi.Router) {
		r.Use(middleware.RequireSession(a.sessions))
		r.Get("/", a.prediction.Show)
		r.Post("/", a.prediction.Submit)
	})

	r.Get("/weather-forecast", a.weather.Forecast)
	r.Get("/uploads/{filename}", a.uploads.Serve)

	return r
}
