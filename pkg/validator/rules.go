/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import "github.com/vrpkit/vrpctl/pkg/problem"

// RuleFunc inspects a problem and returns every violation it finds.
// Implementations must not modify the problem or keep references to it.
type RuleFunc func(p *problem.Problem) []Violation

// Rule is a named entry in the validation registry.
type Rule struct {
	Name  string
	Check RuleFunc
}

// Rule names of the built-in validators.
const (
	RuleJobs       = "jobs"
	RuleRelations  = "relations"
	RuleVehicles   = "vehicles"
	RuleProfiles   = "profiles"
	RuleObjectives = "objectives"
)

// DefaultRules returns the built-in validators in reporting order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleJobs, Check: validateJobs},
		{Name: RuleRelations, Check: validateRelations},
		{Name: RuleVehicles, Check: validateVehicles},
		{Name: RuleProfiles, Check: validateProfiles},
		{Name: RuleObjectives, Check: validateObjectives},
	}
}
