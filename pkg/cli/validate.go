/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/vrpkit/vrpctl/pkg/config"
	"github.com/vrpkit/vrpctl/pkg/problem"
	"github.com/vrpkit/vrpctl/pkg/validator"
)

// ErrViolations is returned by validate when the report lists violations
// and --fail-on-error is set.
var ErrViolations = errors.New("problem has violations")

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check a routing problem for semantic errors",
		Description: `Loads a problem and reports every semantic violation found in:
  - jobs (E1100-E1107)
  - relations (E1200-E1204)
  - vehicles (E1300-E1305)
  - profiles (E1500-E1501)
  - objectives (E1600, E1610, E1611)

The report can be output in JSON, YAML, or table format. The command exits
with a non-zero status when the problem cannot be read or has violations.

# Examples

  vrpctl validate --problem problem.json
  vrpctl validate -p cm://routing/problem -o cm://routing/report
  vrpctl validate -p problem.yaml -c config.yaml -m car.json --format json`,
		Flags: []cli.Flag{
			problemFlag(),
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Sources: cli.EnvVars("VRPCTL_CONFIG"),
				Usage:   "Path/URI to the algorithm config; checked before the problem is validated",
			},
			&cli.StringSliceFlag{
				Name:    "matrix",
				Aliases: []string{"m"},
				Usage:   "Path/URI to a routing matrix, can be repeated; checked against the problem locations",
			},
			&cli.BoolFlag{
				Name:    "fail-on-error",
				Value:   true,
				Sources: cli.EnvVars("VRPCTL_FAIL_ON_ERROR"),
				Usage:   "Exit with a non-zero status when violations are found",
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			problemPath := cmd.String("problem")
			configPath := cmd.String("config")
			matrixPaths := cmd.StringSlice("matrix")

			locations := append([]string{problemPath, configPath, cmd.String("output")}, matrixPaths...)
			kc, err := kubeClientFor(cmd, locations...)
			if err != nil {
				return err
			}

			if configPath != "" {
				if _, err := config.Load(ctx, configPath, config.WithKubeClient(kc)); err != nil {
					return err
				}
			}

			p, err := problem.Load(ctx, problemPath, problem.WithKubeClient(kc))
			if err != nil {
				return err
			}

			if len(matrixPaths) > 0 {
				matrices := make([]*problem.Matrix, 0, len(matrixPaths))
				for _, path := range matrixPaths {
					m, err := problem.LoadMatrix(ctx, path, problem.WithKubeClient(kc))
					if err != nil {
						return err
					}
					matrices = append(matrices, m)
				}
				if err := problem.CheckMatrices(p, matrices); err != nil {
					return err
				}
			}

			v := validator.New(validator.WithVersion(version))
			report, err := v.Report(ctx, p)
			if err != nil {
				return fmt.Errorf("failed to validate problem: %w", err)
			}

			slog.Info("validation completed",
				"problem", problemPath,
				"valid", report.Valid,
				"violations", report.Summary.Total,
				"duration", report.Summary.Duration)

			if err := writeOutput(ctx, cmd, kc, report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if !report.Valid && cmd.Bool("fail-on-error") {
				return fmt.Errorf("%w: %d found", ErrViolations, report.Summary.Total)
			}
			return nil
		},
	}
}
