/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	"github.com/vrpkit/vrpctl/pkg/demand"
	"github.com/vrpkit/vrpctl/pkg/interval"
	"github.com/vrpkit/vrpctl/pkg/problem"
)

// validateJobs checks the job list. Violations are ordered by job position,
// then by code. A duplicated id is reported once, at its second occurrence.
func validateJobs(p *problem.Problem) []Violation {
	var out []Violation
	seen := make(map[string]int, len(p.Plan.Jobs))

	for i := range p.Plan.Jobs {
		job := &p.Plan.Jobs[i]
		seen[job.ID]++
		out = append(out, checkJob(job, seen[job.ID] == 2)...)
	}

	return out
}

func checkJob(job *problem.Job, duplicate bool) []Violation {
	var out []Violation
	tasks := job.Tasks()

	if duplicate {
		out = append(out, newViolation(CodeDuplicateJobID, job.ID, "job id '%s' is used more than once", job.ID))
	}

	if bad := tasksWithInvalidDemand(tasks); len(bad) > 0 {
		out = append(out, newViolation(CodeInvalidTaskDemand, job.ID,
			"job '%s' has tasks with missing or unexpected demand: %s", job.ID, quoteList(bad)).
			with("tasks", bad))
	}

	if len(job.Pickups) > 0 && len(job.Deliveries) > 0 {
		pickups, deliveries := taskDemands(job.Pickups), taskDemands(job.Deliveries)
		if !demand.Balanced(pickups, deliveries) {
			out = append(out, newViolation(CodeDemandImbalance, job.ID,
				"job '%s' picks up %v but delivers %v", job.ID, []int(demand.Sum(pickups)), []int(demand.Sum(deliveries))).
				with("pickup", []int(demand.Sum(pickups))).
				with("delivery", []int(demand.Sum(deliveries))))
		}
	}

	if bad := placesWithInvalidTimes(tasks); len(bad) > 0 {
		out = append(out, newViolation(CodeInvalidJobTimes, job.ID,
			"job '%s' has malformed or overlapping time windows at %s", job.ID, quoteList(bad)).
			with("places", bad))
	}

	if problem.IsReservedID(job.ID) {
		out = append(out, newViolation(CodeReservedJobID, job.ID,
			"job id '%s' is reserved, reserved ids are %s", job.ID, quoteList(problem.ReservedIDs)))
	}

	if len(tasks) == 0 {
		out = append(out, newViolation(CodeJobWithoutTasks, job.ID,
			"job '%s' has no pickups, deliveries, replacements or services", job.ID))
	}

	if bad := placesWithNegativeDuration(tasks); len(bad) > 0 {
		out = append(out, newViolation(CodeNegativeDuration, job.ID,
			"job '%s' has negative duration at %s", job.ID, quoteList(bad)).
			with("places", bad))
	}

	if bad := tasksWithNegativeDemand(tasks); len(bad) > 0 {
		out = append(out, newViolation(CodeNegativeDemandValue, job.ID,
			"job '%s' has negative demand at %s", job.ID, quoteList(bad)).
			with("tasks", bad))
	}

	return out
}

func taskLabel(kt problem.KindedTask) string {
	return fmt.Sprintf("%s[%d]", kt.Kind, kt.Index)
}

func placeLabel(kt problem.KindedTask, place int) string {
	return fmt.Sprintf("%s[%d].places[%d]", kt.Kind, kt.Index, place)
}

func taskDemands(tasks []problem.JobTask) []demand.Demand {
	demands := make([]demand.Demand, len(tasks))
	for i := range tasks {
		demands[i] = tasks[i].Demand
	}
	return demands
}

func tasksWithInvalidDemand(tasks []problem.KindedTask) []string {
	var bad []string
	for _, kt := range tasks {
		hasDemand := kt.Task.Demand != nil
		if hasDemand != kt.Kind.RequiresDemand() {
			bad = append(bad, taskLabel(kt))
		}
	}
	return bad
}

func placesWithInvalidTimes(tasks []problem.KindedTask) []string {
	var bad []string
	for _, kt := range tasks {
		for i, place := range kt.Task.Places {
			windows, errs := interval.ParseWindows(place.Times)
			if len(errs) > 0 || interval.Overlaps(windows) {
				bad = append(bad, placeLabel(kt, i))
			}
		}
	}
	return bad
}

func placesWithNegativeDuration(tasks []problem.KindedTask) []string {
	var bad []string
	for _, kt := range tasks {
		for i, place := range kt.Task.Places {
			if place.Duration < 0 {
				bad = append(bad, placeLabel(kt, i))
			}
		}
	}
	return bad
}

func tasksWithNegativeDemand(tasks []problem.KindedTask) []string {
	var bad []string
	for _, kt := range tasks {
		if !demand.IsNonNegative(kt.Task.Demand) {
			bad = append(bad, taskLabel(kt))
		}
	}
	return bad
}
