/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the algorithm tuning document that accompanies a
// problem: population settings, initial solution methods, ruin and recreate
// operators and termination criteria.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"k8s.io/client-go/kubernetes"

	vrperrors "github.com/vrpkit/vrpctl/pkg/errors"
	"github.com/vrpkit/vrpctl/pkg/serializer"
)

// Config is the algorithm tuning document. Every section is optional.
type Config struct {
	Population  *Population  `json:"population,omitempty" yaml:"population,omitempty"`
	Initial     *Initial     `json:"initial,omitempty" yaml:"initial,omitempty"`
	Ruins       []Operator   `json:"ruins,omitempty" yaml:"ruins,omitempty"`
	Recreates   []Operator   `json:"recreates,omitempty" yaml:"recreates,omitempty"`
	Termination *Termination `json:"termination,omitempty" yaml:"termination,omitempty"`
}

// Population controls the evolutionary population.
type Population struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Size int    `json:"size" yaml:"size"`
}

// Initial lists the methods used to build the first solutions.
type Initial struct {
	Methods []Operator `json:"methods" yaml:"methods"`
	Alpha   float64    `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

// Operator is a weighted heuristic reference.
type Operator struct {
	Type   string  `json:"type" yaml:"type"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Termination bounds the search. Unset values mean no limit.
type Termination struct {
	MaxTime        *int `json:"maxTime,omitempty" yaml:"maxTime,omitempty"`
	MaxGenerations *int `json:"maxGenerations,omitempty" yaml:"maxGenerations,omitempty"`
}

// Option configures loading.
type Option func(*options)

type options struct {
	client kubernetes.Interface
}

// WithKubeClient sets the client used for cm:// locations.
func WithKubeClient(c kubernetes.Interface) Option {
	return func(o *options) {
		o.client = c
	}
}

// Load reads and checks the document at a file path or cm:// URI.
// Every failure is reported as E0004.
func Load(ctx context.Context, location string, opts ...Option) (*Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	fail := func(err error) error {
		return vrperrors.WrapWithContext(vrperrors.ErrCodeReadConfig, "cannot read config", err,
			map[string]any{"location": location})
	}

	reader, err := serializer.OpenDocument(ctx, o.client, location)
	if err != nil {
		return nil, fail(err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close config reader", "error", closeErr)
		}
	}()

	var cfg Config
	if err := reader.Deserialize(&cfg); err != nil {
		return nil, fail(err)
	}
	if err := cfg.Check(); err != nil {
		return nil, fail(err)
	}

	slog.Debug("loaded algorithm config", "location", location,
		"ruins", len(cfg.Ruins), "recreates", len(cfg.Recreates))
	return &cfg, nil
}

// Check reports the first structural problem in the document.
func (c *Config) Check() error {
	if c.Population != nil && c.Population.Size < 0 {
		return fmt.Errorf("population size must not be negative, got %d", c.Population.Size)
	}

	if c.Initial != nil {
		if err := checkOperators("initial.methods", c.Initial.Methods); err != nil {
			return err
		}
		if c.Initial.Alpha < 0 || c.Initial.Alpha > 1 {
			return fmt.Errorf("initial.alpha must be within [0, 1], got %v", c.Initial.Alpha)
		}
	}
	if err := checkOperators("ruins", c.Ruins); err != nil {
		return err
	}
	if err := checkOperators("recreates", c.Recreates); err != nil {
		return err
	}

	if t := c.Termination; t != nil {
		if t.MaxTime != nil && *t.MaxTime <= 0 {
			return fmt.Errorf("termination.maxTime must be positive, got %d", *t.MaxTime)
		}
		if t.MaxGenerations != nil && *t.MaxGenerations <= 0 {
			return fmt.Errorf("termination.maxGenerations must be positive, got %d", *t.MaxGenerations)
		}
	}
	return nil
}

func checkOperators(section string, ops []Operator) error {
	for i, op := range ops {
		if strings.TrimSpace(op.Type) == "" {
			return fmt.Errorf("%s[%d] has no type", section, i)
		}
		if op.Weight < 0 {
			return fmt.Errorf("%s[%d] weight must not be negative, got %v", section, i, op.Weight)
		}
	}
	return nil
}
