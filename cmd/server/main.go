package main

import (
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/csg33k/employee-manager/internal/adapters/restapi"
	"github.com/csg33k/employee-manager/internal/config"
	"github.com/csg33k/employee-manager/internal/handlers"
	"github.com/csg33k/employee-manager/internal/middleware"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	api := restapi.New(cfg.EmployeeAPIURL, &http.Client{Timeout: cfg.HTTPTimeout})
	api.Logger = logger
	h := handlers.New(api, logger, cfg.SessionTTL)

	port := strconv.Itoa(cfg.Port)
	log.Printf("Employee Manager running on http://localhost:%s", port)
	log.Printf("Employee API: %s", cfg.EmployeeAPIURL)
	if err := http.ListenAndServe(":"+port, middleware.LogRequests(logger, h.Routes())); err != nil {
		log.Fatal(err)
	}
}
