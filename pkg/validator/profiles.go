/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import "github.com/vrpkit/vrpctl/pkg/problem"

// validateProfiles reports an empty profile collection (E1501) or, once per
// repeated name, a duplicate profile (E1500).
func validateProfiles(p *problem.Problem) []Violation {
	profiles := p.Fleet.Profiles
	if len(profiles) == 0 {
		return []Violation{newViolation(CodeEmptyProfiles, "", "fleet has no routing profiles")}
	}

	var out []Violation
	seen := make(map[string]int, len(profiles))
	for _, prof := range profiles {
		seen[prof.Name]++
		if seen[prof.Name] == 2 {
			out = append(out, newViolation(CodeDuplicateProfile, prof.Name,
				"profile name '%s' is used more than once", prof.Name))
		}
	}
	return out
}
