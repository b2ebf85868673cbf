package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/vrpkit/vrpctl/pkg/api"
	"github.com/vrpkit/vrpctl/pkg/server"
)

func serveCmd() *cli.Command {
	defaults := server.DefaultConfig()

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the validator over HTTP",
		Description: `Starts the validation API:
  - POST /v1/validate   validate a JSON or YAML problem
  - POST /v1/locations  list the unique locations of a problem
  - GET  /health, /ready, /metrics`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   defaults.Address,
				Sources: cli.EnvVars("VRPCTL_ADDRESS"),
				Usage:   "Address to listen on",
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   defaults.Port,
				Sources: cli.EnvVars("PORT"),
				Usage:   "Port to listen on",
			},
			&cli.FloatFlag{
				Name:    "rate-limit",
				Value:   float64(defaults.RateLimit),
				Sources: cli.EnvVars("VRPCTL_RATE_LIMIT"),
				Usage:   "Maximum API requests per second",
			},
			&cli.IntFlag{
				Name:    "rate-limit-burst",
				Value:   defaults.RateLimitBurst,
				Sources: cli.EnvVars("VRPCTL_RATE_LIMIT_BURST"),
				Usage:   "Maximum API request burst",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Value: defaults.ShutdownTimeout,
				Usage: "Time allowed for in-flight requests on shutdown",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.ServeWithConfig(ctx, serveConfig(cmd, defaults), version)
		},
	}
}

func serveConfig(cmd *cli.Command, base *server.Config) *server.Config {
	cfg := *base
	cfg.Address = cmd.String("address")
	cfg.Port = int(cmd.Int("port"))
	cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))
	cfg.RateLimitBurst = int(cmd.Int("rate-limit-burst"))
	if d := cmd.Duration("shutdown-timeout"); d > 0 {
		cfg.ShutdownTimeout = d
	}
	return &cfg
}
