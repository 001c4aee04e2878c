// Package pgtest runs a disposable postgres for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	startupTimeout = 30 * time.Second
	readyLog       = "database system is ready to accept connections"
)

// Start launches a container and returns its connection string. stop is
// always safe to call. Panics inside testcontainers, which it raises when no
// docker daemon is reachable, are returned as errors.
func Start(ctx context.Context) (connStr string, stop func(), err error) {
	stop = func() {}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("postgres container: %v", r)
		}
	}()

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("roguemods_test"),
		postgres.WithUsername("roguemods"),
		postgres.WithPassword("roguemods"),
		testcontainers.WithWaitStrategy(
			wait.ForLog(readyLog).WithOccurrence(2).WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return "", stop, err
	}
	stop = func() { _ = container.Terminate(ctx) }

	connStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stop()
		return "", func() {}, err
	}
	return connStr, stop, nil
}

// Skip skips integration tests under -short or without a database
func Skip(t testing.TB, available bool) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !available {
		t.Skip("Skipping integration test: database not available")
	}
}
