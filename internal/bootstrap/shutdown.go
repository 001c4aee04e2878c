package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RogueMods_Go/internal/server"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server *server.Server
	Pool   *worker.Pool
	Store  *Store
}

// GracefulShutdown stops the HTTP server first so no new menus open, then
// drains the commit workers so in-flight saves land, then closes the store.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Pool != nil {
		slog.Info(LogMsgShuttingDownCommitQueue)
		c.Pool.Stop()
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
