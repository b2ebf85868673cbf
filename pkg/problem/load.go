/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package problem

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"k8s.io/client-go/kubernetes"

	vrperrors "github.com/vrpkit/vrpctl/pkg/errors"
	"github.com/vrpkit/vrpctl/pkg/serializer"
)

// LoadOption configures problem loading.
type LoadOption func(*loadOptions)

type loadOptions struct {
	client kubernetes.Interface
}

// WithKubeClient sets the client used for cm:// locations.
func WithKubeClient(c kubernetes.Interface) LoadOption {
	return func(o *loadOptions) {
		o.client = c
	}
}

// Load reads a problem from a file path or a cm://namespace/name URI.
// Failures to reach the document are E0000; documents that do not decode
// into a Problem are E0001.
func Load(ctx context.Context, location string, opts ...LoadOption) (*Problem, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	reader, err := serializer.OpenDocument(ctx, o.client, location)
	if err != nil {
		return nil, vrperrors.WrapWithContext(vrperrors.ErrCodeReadProblem, "cannot read problem", err,
			map[string]any{"location": location})
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close problem reader", "error", closeErr)
		}
	}()

	p, err := decode(reader)
	if err != nil {
		return nil, vrperrors.WrapWithContext(vrperrors.ErrCodeDecodeProblem, "cannot deserialize problem", err,
			map[string]any{"location": location})
	}

	slog.Debug("loaded problem",
		"location", location,
		"jobs", len(p.Plan.Jobs),
		"relations", len(p.Plan.Relations),
		"vehicleTypes", len(p.Fleet.Vehicles),
		"profiles", len(p.Fleet.Profiles))

	return p, nil
}

// FromReader decodes a problem from r in the given format.
func FromReader(format serializer.Format, r io.Reader) (*Problem, error) {
	reader, err := serializer.NewReader(format, r)
	if err != nil {
		return nil, vrperrors.Wrap(vrperrors.ErrCodeReadProblem, "cannot read problem", err)
	}
	p, err := decode(reader)
	if err != nil {
		return nil, vrperrors.Wrap(vrperrors.ErrCodeDecodeProblem, "cannot deserialize problem", err)
	}
	return p, nil
}

func decode(d serializer.Deserializer) (*Problem, error) {
	var p Problem
	if err := d.Deserialize(&p); err != nil {
		return nil, err
	}
	if p.Plan.Jobs == nil {
		return nil, fmt.Errorf("missing required section plan.jobs")
	}
	if p.Fleet.Vehicles == nil {
		return nil, fmt.Errorf("missing required section fleet.vehicles")
	}
	return &p, nil
}
