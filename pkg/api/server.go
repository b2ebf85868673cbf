package api

import (
	"context"
	"log/slog"

	"github.com/vrpkit/vrpctl/pkg/logging"
	"github.com/vrpkit/vrpctl/pkg/server"
	"github.com/vrpkit/vrpctl/pkg/validator"
)

const (
	name           = "vrpctld"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/vrpkit/vrpctl/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeWithConfig(context.Background(), server.DefaultConfig(), version)
}

// ServeWithConfig runs the API server with cfg until ctx is done.
func ServeWithConfig(ctx context.Context, cfg *server.Config, ver string) error {
	slog.Info("starting",
		"name", name,
		"version", ver,
		"commit", commit,
		"date", date,
	)

	h := NewHandler(validator.New(validator.WithVersion(ver)))

	s := server.New(
		server.WithName(name),
		server.WithVersion(ver),
		server.WithConfig(cfg),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
