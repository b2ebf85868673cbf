/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/client-go/kubernetes"

	"github.com/vrpkit/vrpctl/pkg/k8s/client"
	"github.com/vrpkit/vrpctl/pkg/serializer"
)

func problemFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "problem",
		Aliases:  []string{"p"},
		Required: true,
		Sources:  cli.EnvVars("VRPCTL_PROBLEM"),
		Usage: `Path/URI to the problem definition (JSON or YAML).
	Supports: file paths or ConfigMap URIs (cm://namespace/name).`,
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Sources: cli.EnvVars("VRPCTL_OUTPUT"),
		Usage:   "Output file path or ConfigMap URI (cm://namespace/name), default: stdout",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("VRPCTL_FORMAT"),
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func kubeconfigFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Sources: cli.EnvVars("KUBECONFIG"),
		Usage:   "Path to kubeconfig used for cm:// locations (default: in-cluster or ~/.kube/config)",
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// kubeClientFor returns a client when any of locations is a ConfigMap URI.
// Nil means no location needs one.
func kubeClientFor(cmd *cli.Command, locations ...string) (kubernetes.Interface, error) {
	for _, l := range locations {
		if !strings.HasPrefix(l, serializer.ConfigMapURIScheme) {
			continue
		}
		cs, _, err := client.BuildKubeClient(cmd.String("kubeconfig"))
		if err != nil {
			return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
		}
		slog.Debug("using kubernetes client for ConfigMap locations")
		return cs, nil
	}
	return nil, nil
}

// writeOutput serializes data to the --output location in the --format
// format. Stdout output goes to the root command writer.
func writeOutput(ctx context.Context, cmd *cli.Command, c kubernetes.Interface, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var ser serializer.Serializer
	path := strings.TrimSpace(cmd.String("output"))
	if path == "" || path == serializer.StdoutURI {
		ser = serializer.NewWriter(outFormat, cmd.Root().Writer)
	} else {
		ser, err = serializer.NewFileWriterOrStdout(outFormat, path)
		if err != nil {
			return fmt.Errorf("failed to create output writer: %w", err)
		}
	}

	if closer, ok := ser.(serializer.Closer); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil {
				slog.Warn("failed to close output", "error", closeErr)
			}
		}()
	}

	if cmw, ok := ser.(*serializer.ConfigMapWriter); ok && c != nil {
		cmw.Client = c
	}

	return ser.Serialize(ctx, data)
}
