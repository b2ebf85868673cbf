package main

import (
	"log/slog"
	"os"

	"github.com/vrpkit/vrpctl/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
