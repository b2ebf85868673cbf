package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vrpkit/vrpctl/pkg/validator"
)

type codeEntry struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

func codesCmd() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: "List the violation codes reported by validate",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			codes := validator.Codes()
			entries := make(map[string]codeEntry, len(codes))
			for _, c := range codes {
				entries[c.String()] = codeEntry{Code: c.String(), Description: c.Description()}
			}
			return writeOutput(ctx, cmd, nil, entries)
		},
	}
}
