/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vrpkit/vrpctl/pkg/header"
	"github.com/vrpkit/vrpctl/pkg/problem"
)

// ReportKind is the header kind of validation reports.
const ReportKind = "ValidationReport"

// Report is the serializable outcome of a validation run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// RunID uniquely identifies the validation run.
	RunID string `json:"runId" yaml:"runId"`

	// Valid is true when no violations were found.
	Valid bool `json:"valid" yaml:"valid"`

	Summary Summary `json:"summary" yaml:"summary"`

	// Violations are grouped by rule in reporting order.
	Violations []Violation `json:"violations" yaml:"violations"`
}

// Summary aggregates a validation run.
type Summary struct {
	Total    int            `json:"total" yaml:"total"`
	ByRule   map[string]int `json:"byRule" yaml:"byRule"`
	Duration time.Duration  `json:"duration" yaml:"duration"`
}

// Report validates p and wraps the outcome in a Report.
func (v *Validator) Report(ctx context.Context, p *problem.Problem) (*Report, error) {
	start := time.Now()

	results, err := v.run(ctx, p)
	if err != nil {
		return nil, err
	}

	r := &Report{
		RunID:      uuid.NewString(),
		Violations: make([]Violation, 0),
		Summary: Summary{
			ByRule: make(map[string]int, len(v.rules)),
		},
	}
	r.Set(ReportKind, v.Version)

	for i, res := range results {
		r.Summary.ByRule[v.rules[i].Name] += len(res)
		r.Violations = append(r.Violations, res...)
	}
	r.Summary.Total = len(r.Violations)
	r.Summary.Duration = time.Since(start)
	r.Valid = r.Summary.Total == 0

	return r, nil
}

// Codes returns the codes of the report violations in order.
func (r *Report) Codes() []Code {
	return CodesOf(r.Violations)
}
