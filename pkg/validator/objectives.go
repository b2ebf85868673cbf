/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"slices"

	"github.com/vrpkit/vrpctl/pkg/problem"
)

// validateObjectives checks user defined objectives. A problem without
// objectives uses the solver defaults and is not checked.
func validateObjectives(p *problem.Problem) []Violation {
	if p.Objectives == nil {
		return nil
	}

	var out []Violation
	primary := p.Objectives.Primary

	if len(primary) == 0 {
		out = append(out, newViolation(CodeEmptyObjectives, "", "primary objectives are empty"))
	}

	seen := make(map[problem.ObjectiveType]int)
	for _, obj := range slices.Concat(primary, p.Objectives.Secondary) {
		seen[obj.Type]++
		if seen[obj.Type] == 2 {
			out = append(out, newViolation(CodeDuplicateObjective, string(obj.Type),
				"objective '%s' is used more than once", obj.Type))
		}
	}

	hasCost := slices.ContainsFunc(primary, func(o problem.Objective) bool { return o.Type.IsCost() })
	if !hasCost {
		out = append(out, newViolation(CodeMissingCostObjective, "",
			"primary objectives contain none of %s", quoteList([]string{
				string(problem.ObjectiveMinimizeCost),
				string(problem.ObjectiveMinimizeDistance),
				string(problem.ObjectiveMinimizeDuration),
			})))
	}

	return out
}
