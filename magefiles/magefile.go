//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const migrationsDir = "./internal/adapters/sqlite/migrations"

// Dbup runs dbmate to apply the mock store migrations to MOCKSTORE_DB_PATH.
func Dbup() error {
	if _, err := exec.LookPath("dbmate"); err != nil {
		fmt.Println(">> dbmate not found; install with:")
		fmt.Println("   go install github.com/amacneil/dbmate/v2@latest")
		return err
	}
	dbPath := os.Getenv("MOCKSTORE_DB_PATH")
	if dbPath == "" {
		dbPath = "employees.db"
	}
	fmt.Println(">> dbmate up", dbPath)
	return sh.Run("dbmate", "--url", "sqlite:"+dbPath, "--migrations-dir", migrationsDir, "--no-dump-schema", "up")
}

// Build tidies deps, then compiles both binaries into ./bin.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building binaries...")
	if err := sh.Run("go", "build", "-o", "bin/employee-manager", "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/mockstore", "./cmd/mockstore")
}

// Run builds then executes the UI server.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server on :8080 ...")
	return sh.Run("./bin/employee-manager")
}

// MockStore starts the local SQLite-backed employee API via go run.
func MockStore() error {
	fmt.Println(">> go run ./cmd/mockstore ...")
	cmd := exec.Command("go", "run", "./cmd/mockstore")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Dev runs the mock store in the background and the UI server in the
// foreground, pointed at it. Ctrl-C stops both.
func Dev() error {
	port := os.Getenv("MOCKSTORE_PORT")
	if port == "" {
		port = "8081"
	}
	base := os.Getenv("MOCKSTORE_BASE_PATH")
	if base == "" {
		base = "/employeedetails/email"
	}

	fmt.Println(">> Starting mock store...")
	store := exec.Command("go", "run", "./cmd/mockstore")
	store.Stdout = os.Stdout
	store.Stderr = os.Stderr
	if err := store.Start(); err != nil {
		return fmt.Errorf("start mock store: %w", err)
	}

	fmt.Println(">> Starting server (go run)...")
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	server.Env = append(os.Environ(), "EMPLOYEE_API_URL=http://localhost:"+port+base)
	if err := server.Start(); err != nil {
		store.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	// Wait for Ctrl-C then cleanly stop both processes.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Kill()
	store.Process.Kill()
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	err := os.Remove("employees.db")
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Install builds and installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	if err := sh.Run("go", "install", "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "install", "./cmd/mockstore")
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
