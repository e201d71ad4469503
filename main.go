package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/agricare/agri-backend/internal/app"
	"github.com/agricare/agri-backend/internal/auth"
	"github.com/agricare/agri-backend/internal/config"
	"github.com/agricare/agri-backend/internal/db"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := auth.Init(database); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	application := app.New(cfg, auth.NewGormUserStore(database), logger)

	logger.Info("server listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, application.Router()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
