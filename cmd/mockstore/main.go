// Command mockstore serves the employee REST resource from a local SQLite
// database, standing in for the hosted API during development.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/joho/godotenv"

	sqliteadapter "github.com/csg33k/employee-manager/internal/adapters/sqlite"
	"github.com/csg33k/employee-manager/internal/config"
	"github.com/csg33k/employee-manager/internal/middleware"
	"github.com/csg33k/employee-manager/internal/mockstore"
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

	repo, err := sqliteadapter.New(cfg.MockStore.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	srv := mockstore.New(repo, logger)
	port := strconv.Itoa(cfg.MockStore.Port)
	log.Printf("Mock employee store running on http://localhost:%s%s", port, cfg.MockStore.BasePath)
	log.Printf("Database: %s", cfg.MockStore.DBPath)
	if err := http.ListenAndServe(":"+port, middleware.LogRequests(logger, srv.Router(cfg.MockStore.BasePath))); err != nil {
		log.Fatal(err)
	}
}
