package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vrpkit/vrpctl/pkg/api"
	"github.com/vrpkit/vrpctl/pkg/problem"
)

func locationsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "locations",
		Aliases:               []string{"loc"},
		EnableShellCompletion: true,
		Usage:                 "List the unique locations of a problem",
		Description: `Lists every distinct location referenced by the problem in first-seen
order: job places, then shift starts and ends, break and reload locations.
The order matches the row order expected of routing matrices.`,
		Flags: []cli.Flag{
			problemFlag(),
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			kc, err := kubeClientFor(cmd, cmd.String("problem"), cmd.String("output"))
			if err != nil {
				return err
			}

			p, err := problem.Load(ctx, cmd.String("problem"), problem.WithKubeClient(kc))
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, kc, api.NewLocationsResponse(p, version))
		},
	}
}
