/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/vrpkit/vrpctl/pkg/interval"
	"github.com/vrpkit/vrpctl/pkg/problem"
)

// minPolygonVertices is the smallest vertex count of a valid allowed area.
const minPolygonVertices = 3

// validateVehicles checks vehicle types. Violations are ordered by vehicle
// type position, then by code, then by shift.
func validateVehicles(p *problem.Problem) []Violation {
	var out []Violation
	typeSeen := make(map[string]int, len(p.Fleet.Vehicles))
	vehicleSeen := make(map[string]int)

	for i := range p.Fleet.Vehicles {
		vt := &p.Fleet.Vehicles[i]

		typeSeen[vt.TypeID]++
		if typeSeen[vt.TypeID] == 2 {
			out = append(out, newViolation(CodeDuplicateVehicleType, vt.TypeID,
				"vehicle type id '%s' is used more than once", vt.TypeID))
		}

		for _, id := range vt.VehicleIDs {
			vehicleSeen[id]++
			if vehicleSeen[id] == 2 {
				out = append(out, newViolation(CodeDuplicateVehicleID, vt.TypeID,
					"vehicle id '%s' is used more than once", id).
					with("vehicleId", id))
			}
		}

		out = append(out, checkShifts(vt)...)

		if v, ok := checkAllowedAreas(vt); ok {
			out = append(out, v)
		}
	}

	return out
}

// shiftSpan is a parsed shift. An open shift has no end.
type shiftSpan struct {
	start time.Time
	end   time.Time
	open  bool
}

func (s shiftSpan) contains(w interval.TimeWindow) bool {
	if s.open {
		return interval.StartsWithin(s.start, w)
	}
	return interval.Contains(interval.TimeWindow{Start: s.start, End: s.end}, w)
}

// parseShift returns the shift span, or an error when the start is not a
// timestamp or the start/end pair is not a valid interval.
func parseShift(shift *problem.Shift) (shiftSpan, error) {
	if shift.End == nil {
		start, err := time.Parse(time.RFC3339, shift.Start.Earliest)
		if err != nil {
			return shiftSpan{}, &interval.MalformedIntervalError{
				Raw:    []string{shift.Start.Earliest},
				Reason: fmt.Sprintf("invalid start: %v", err),
			}
		}
		return shiftSpan{start: start, open: true}, nil
	}

	w, err := interval.ParseWindow([]string{shift.Start.Earliest, shift.End.Latest})
	if err != nil {
		return shiftSpan{}, err
	}
	return shiftSpan{start: w.Start, end: w.End}, nil
}

func checkShifts(vt *problem.VehicleType) []Violation {
	var shiftErrs, breakErrs, reloadErrs []Violation
	bounded := make(map[int]interval.TimeWindow, len(vt.Shifts))

	for si := range vt.Shifts {
		shift := &vt.Shifts[si]
		span, err := parseShift(shift)
		validShift := err == nil
		if !validShift {
			shiftErrs = append(shiftErrs, newViolation(CodeInvalidShiftTime, vt.TypeID,
				"vehicle type '%s' shift %d: %v", vt.TypeID, si, err).
				with("shiftIndex", si))
		} else if !span.open {
			bounded[si] = interval.TimeWindow{Start: span.start, End: span.end}
		}

		if reasons := breakProblems(shift, span, validShift); len(reasons) > 0 {
			breakErrs = append(breakErrs, newViolation(CodeInvalidBreakTime, vt.TypeID,
				"vehicle type '%s' shift %d: %s", vt.TypeID, si, strings.Join(reasons, "; ")).
				with("shiftIndex", si).
				with("reasons", reasons))
		}

		if reasons := reloadProblems(shift, span, validShift); len(reasons) > 0 {
			reloadErrs = append(reloadErrs, newViolation(CodeInvalidReloadTime, vt.TypeID,
				"vehicle type '%s' shift %d: %s", vt.TypeID, si, strings.Join(reasons, "; ")).
				with("shiftIndex", si).
				with("reasons", reasons))
		}
	}

	if overlapping := overlappingShifts(len(vt.Shifts), bounded); len(overlapping) > 0 {
		shiftErrs = append(shiftErrs, newViolation(CodeInvalidShiftTime, vt.TypeID,
			"vehicle type '%s' has overlapping shifts %v", vt.TypeID, overlapping).
			with("shifts", overlapping))
	}

	out := append(shiftErrs, breakErrs...)
	return append(out, reloadErrs...)
}

// overlappingShifts returns, in ascending order, the indexes of bounded
// shifts whose windows intersect another shift of the same vehicle type.
// Open shifts have no end and take no part.
func overlappingShifts(n int, bounded map[int]interval.TimeWindow) []int {
	var out []int
	for i := 0; i < n; i++ {
		wi, ok := bounded[i]
		if !ok {
			continue
		}
		for j := 0; j < n; j++ {
			wj, ok := bounded[j]
			if !ok || i == j {
				continue
			}
			if interval.Overlaps([]interval.TimeWindow{wi, wj}) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// breakProblems checks all break windows of a shift together: each must be
// well formed, none may overlap another and all must lie within the shift.
func breakProblems(shift *problem.Shift, span shiftSpan, validShift bool) []string {
	var reasons []string
	var all []interval.TimeWindow
	outside := false

	for bi, b := range shift.Breaks {
		windows, errs := interval.ParseWindows(b.Times)
		if len(errs) > 0 {
			reasons = append(reasons, fmt.Sprintf("break %d has malformed time windows", bi))
		}
		all = append(all, windows...)
		if validShift {
			for _, w := range windows {
				if !span.contains(w) {
					outside = true
				}
			}
		}
	}

	if interval.Overlaps(all) {
		reasons = append(reasons, "break time windows overlap")
	}
	if outside {
		reasons = append(reasons, "break time windows lie outside of the shift")
	}
	return reasons
}

// reloadProblems checks reload windows for form and shift containment.
// Reload windows may overlap each other.
func reloadProblems(shift *problem.Shift, span shiftSpan, validShift bool) []string {
	var reasons []string
	outside := false

	for ri, r := range shift.Reloads {
		windows, errs := interval.ParseWindows(r.Times)
		if len(errs) > 0 {
			reasons = append(reasons, fmt.Sprintf("reload %d has malformed time windows", ri))
		}
		if validShift {
			for _, w := range windows {
				if !span.contains(w) {
					outside = true
				}
			}
		}
	}

	if outside {
		reasons = append(reasons, "reload time windows lie outside of the shift")
	}
	return reasons
}

func checkAllowedAreas(vt *problem.VehicleType) (Violation, bool) {
	if vt.Limits == nil || vt.Limits.AllowedAreas == nil {
		return Violation{}, false
	}

	areas := vt.Limits.AllowedAreas
	if len(areas) == 0 {
		return newViolation(CodeInvalidAllowedArea, vt.TypeID,
			"vehicle type '%s' has an empty allowed areas list", vt.TypeID), true
	}

	var bad []int
	for i, area := range areas {
		if len(area) < minPolygonVertices {
			bad = append(bad, i)
		}
	}
	if len(bad) == 0 {
		return Violation{}, false
	}

	return newViolation(CodeInvalidAllowedArea, vt.TypeID,
		"vehicle type '%s' has allowed areas %v with less than %d vertices", vt.TypeID, bad, minPolygonVertices).
		with("areas", bad), true
}
