/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"k8s.io/utils/ptr"

	"github.com/vrpkit/vrpctl/pkg/problem"
)

// validateRelations checks relations against the plan and the fleet.
// Per-relation violations come first, in relation order then code order,
// followed by one E1204 per job bound to more than one vehicle.
func validateRelations(p *problem.Problem) []Violation {
	relations := p.Plan.Relations
	if len(relations) == 0 {
		return nil
	}

	jobIDs := make([]string, 0, len(p.Plan.Jobs))
	jobs := make(map[string]*problem.Job, len(p.Plan.Jobs))
	for i := range p.Plan.Jobs {
		job := &p.Plan.Jobs[i]
		if _, ok := jobs[job.ID]; !ok {
			jobs[job.ID] = job
			jobIDs = append(jobIDs, job.ID)
		}
	}

	var vehicleIDs []string
	vehicles := make(map[string]struct{})
	for _, vt := range p.Fleet.Vehicles {
		for _, id := range vt.VehicleIDs {
			if _, ok := vehicles[id]; !ok {
				vehicles[id] = struct{}{}
				vehicleIDs = append(vehicleIDs, id)
			}
		}
	}

	var out []Violation
	for i := range relations {
		out = append(out, checkRelation(i, &relations[i], jobs, jobIDs, vehicles, vehicleIDs)...)
	}

	return append(out, conflictingVehicleBindings(relations)...)
}

func checkRelation(index int, rel *problem.Relation, jobs map[string]*problem.Job, jobIDs []string,
	vehicles map[string]struct{}, vehicleIDs []string) []Violation {

	var out []Violation
	subject := fmt.Sprintf("relation[%d]", index)

	var unknown []string
	suggestions := make(map[string]string)
	for _, id := range rel.Jobs {
		if problem.IsReservedID(id) || slices.Contains(unknown, id) {
			continue
		}
		if _, ok := jobs[id]; ok {
			continue
		}
		unknown = append(unknown, id)
		if s, ok := closest(id, jobIDs); ok {
			suggestions[id] = s
		}
	}
	if len(unknown) > 0 {
		v := newViolation(CodeUnknownRelationJob, subject,
			"%s references job ids %s%s", subject, quoteList(unknown), hint(unknown, suggestions)).
			with("jobIds", unknown)
		if len(suggestions) > 0 {
			v = v.with("suggestions", suggestions)
		}
		out = append(out, v)
	}

	if rel.VehicleID != "" {
		if _, ok := vehicles[rel.VehicleID]; !ok {
			v := newViolation(CodeUnknownRelationVehicle, subject,
				"%s references vehicle id '%s'", subject, rel.VehicleID).
				with("vehicleId", rel.VehicleID).
				with("shiftIndex", ptr.Deref(rel.ShiftIndex, 0))
			if s, ok := closest(rel.VehicleID, vehicleIDs); ok {
				v.Message += fmt.Sprintf(" (did you mean '%s'?)", s)
				v = v.with("suggestion", s)
			}
			out = append(out, v)
		}
	}

	if len(rel.Jobs) == 0 {
		out = append(out, newViolation(CodeEmptyRelation, subject, "%s has no jobs", subject))
	}

	if rel.Type.IsOrdered() {
		var ambiguous []string
		for _, id := range rel.Jobs {
			job, ok := jobs[id]
			if !ok || slices.Contains(ambiguous, id) {
				continue
			}
			if hasMultiplePlacesOrTimes(job) {
				ambiguous = append(ambiguous, id)
			}
		}
		if len(ambiguous) > 0 {
			out = append(out, newViolation(CodeAmbiguousRelationJob, subject,
				"%s of type '%s' references jobs %s", subject, rel.Type, quoteList(ambiguous)).
				with("jobIds", ambiguous))
		}
	}

	return out
}

// hasMultiplePlacesOrTimes reports whether any task of the job can be matched
// at more than one place or time window.
func hasMultiplePlacesOrTimes(job *problem.Job) bool {
	for _, kt := range job.Tasks() {
		if len(kt.Task.Places) > 1 {
			return true
		}
		for _, place := range kt.Task.Places {
			if len(place.Times) > 1 {
				return true
			}
		}
	}
	return false
}

// conflictingVehicleBindings reports jobs that relations bind to more than
// one distinct vehicle. Reserved activities are shared by every vehicle and
// are skipped.
func conflictingVehicleBindings(relations []problem.Relation) []Violation {
	var order []string
	bound := make(map[string][]string)

	for _, rel := range relations {
		if rel.VehicleID == "" {
			continue
		}
		for _, id := range rel.Jobs {
			if problem.IsReservedID(id) {
				continue
			}
			current, ok := bound[id]
			if !ok {
				order = append(order, id)
			}
			if !slices.Contains(current, rel.VehicleID) {
				bound[id] = append(current, rel.VehicleID)
			}
		}
	}

	var out []Violation
	for _, id := range order {
		if vehicles := bound[id]; len(vehicles) > 1 {
			out = append(out, newViolation(CodeConflictingRelationVehicles, id,
				"job '%s' is bound to vehicles %s", id, quoteList(vehicles)).
				with("vehicleIds", vehicles))
		}
	}
	return out
}

// closest returns the candidate nearest to id by edit distance, if it is
// close enough to be a plausible typo. Ties go to the earlier candidate.
func closest(id string, candidates []string) (string, bool) {
	limit := max(1, len(id)/3)
	best, bestDistance := "", limit+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(id, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best, best != ""
}

func hint(ids []string, suggestions map[string]string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var parts []string
	for _, id := range ids {
		if s, ok := suggestions[id]; ok {
			parts = append(parts, fmt.Sprintf("'%s' -> '%s'", id, s))
		}
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(parts, ", "))
}
