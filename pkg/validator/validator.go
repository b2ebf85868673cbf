/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vrpkit/vrpctl/pkg/problem"
)

// Validator runs a fixed, ordered set of rules against a problem.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	rules       []Rule
	concurrency int
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithRules replaces the built-in rules. Results are merged in the order
// the rules are given.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = append([]Rule(nil), rules...)
	}
}

// WithConcurrency limits how many rules run at the same time.
// Values below 1 mean no limit.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		v.concurrency = n
	}
}

// New creates a new Validator with the built-in rules and the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Rules returns the names of the registered rules in reporting order.
func (v *Validator) Rules() []string {
	names := make([]string, len(v.rules))
	for i, r := range v.rules {
		names[i] = r.Name
	}
	return names
}

// Register appends a rule. Its violations are reported after those of
// every rule registered before it.
func (v *Validator) Register(r Rule) {
	v.rules = append(v.rules, r)
}

// Validate runs every rule concurrently and returns the combined
// violations grouped by rule in registration order. A valid problem yields
// an empty, non-nil slice.
func (v *Validator) Validate(ctx context.Context, p *problem.Problem) ([]Violation, error) {
	results, err := v.run(ctx, p)
	if err != nil {
		return nil, err
	}

	out := make([]Violation, 0)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// run returns the violations of each rule, indexed like v.rules.
func (v *Validator) run(ctx context.Context, p *problem.Problem) ([][]Violation, error) {
	if p == nil {
		validationTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("problem cannot be nil")
	}

	start := time.Now()
	defer func() {
		validationDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Debug("starting validation",
		slog.Int("jobs", len(p.Plan.Jobs)),
		slog.Int("vehicleTypes", len(p.Fleet.Vehicles)),
		slog.Int("rules", len(v.rules)))

	results := make([][]Violation, len(v.rules))
	g, gctx := errgroup.WithContext(ctx)
	if v.concurrency > 0 {
		g.SetLimit(v.concurrency)
	}

	for i, rule := range v.rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ruleStart := time.Now()
			results[i] = rule.Check(p)
			elapsed := time.Since(ruleStart)
			validationRuleDuration.WithLabelValues(rule.Name).Observe(elapsed.Seconds())
			slog.Debug("rule completed",
				slog.String("rule", rule.Name),
				slog.Int("violations", len(results[i])),
				slog.Duration("duration", elapsed))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		validationTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("validation interrupted: %w", err)
	}

	total := 0
	for _, r := range results {
		total += len(r)
		for _, violation := range r {
			violationTotal.WithLabelValues(violation.Code.String()).Inc()
		}
	}
	if total == 0 {
		validationTotal.WithLabelValues("valid").Inc()
	} else {
		validationTotal.WithLabelValues("invalid").Inc()
	}

	slog.Debug("validation completed",
		slog.Int("violations", total),
		slog.Duration("duration", time.Since(start)))

	return results, nil
}
