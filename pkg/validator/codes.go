/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Code identifies a class of semantic violation. The set of codes is closed;
// each code serializes to a stable string such as "E1100".
type Code int

// Job plan codes.
const (
	CodeDuplicateJobID      Code = 1100
	CodeInvalidTaskDemand   Code = 1101
	CodeDemandImbalance     Code = 1102
	CodeInvalidJobTimes     Code = 1103
	CodeReservedJobID       Code = 1104
	CodeJobWithoutTasks     Code = 1105
	CodeNegativeDuration    Code = 1106
	CodeNegativeDemandValue Code = 1107
)

// Relation codes.
const (
	CodeUnknownRelationJob          Code = 1200
	CodeUnknownRelationVehicle      Code = 1201
	CodeEmptyRelation               Code = 1202
	CodeAmbiguousRelationJob        Code = 1203
	CodeConflictingRelationVehicles Code = 1204
)

// Vehicle fleet codes.
const (
	CodeDuplicateVehicleType Code = 1300
	CodeDuplicateVehicleID   Code = 1301
	CodeInvalidShiftTime     Code = 1302
	CodeInvalidBreakTime     Code = 1303
	CodeInvalidReloadTime    Code = 1304
	CodeInvalidAllowedArea   Code = 1305
)

// Profile codes.
const (
	CodeDuplicateProfile Code = 1500
	CodeEmptyProfiles    Code = 1501
)

// Objective codes.
const (
	CodeEmptyObjectives      Code = 1600
	CodeDuplicateObjective   Code = 1610
	CodeMissingCostObjective Code = 1611
)

var descriptions = map[Code]string{
	CodeDuplicateJobID:      "duplicated job ids",
	CodeInvalidTaskDemand:   "invalid job task demand",
	CodeDemandImbalance:     "invalid pickup and delivery demand",
	CodeInvalidJobTimes:     "invalid time windows in jobs",
	CodeReservedJobID:       "reserved job id is used",
	CodeJobWithoutTasks:     "empty job",
	CodeNegativeDuration:    "negative duration",
	CodeNegativeDemandValue: "negative demand",

	CodeUnknownRelationJob:          "relation has job id which does not present in the plan",
	CodeUnknownRelationVehicle:      "relation has vehicle id which does not present in the fleet",
	CodeEmptyRelation:               "relation has empty job id list",
	CodeAmbiguousRelationJob:        "relation has job with multiple places or time windows",
	CodeConflictingRelationVehicles: "job is assigned to different vehicles in relations",

	CodeDuplicateVehicleType: "duplicated vehicle type ids",
	CodeDuplicateVehicleID:   "duplicated vehicle ids",
	CodeInvalidShiftTime:     "invalid start or end times in vehicle shift",
	CodeInvalidBreakTime:     "invalid break time windows in vehicle shift",
	CodeInvalidReloadTime:    "invalid reload time windows in vehicle shift",
	CodeInvalidAllowedArea:   "invalid allowed area definition",

	CodeDuplicateProfile: "duplicate profile names",
	CodeEmptyProfiles:    "empty profile collection",

	CodeEmptyObjectives:      "an empty objective",
	CodeDuplicateObjective:   "duplicate objective",
	CodeMissingCostObjective: "missing cost objective",
}

// Codes returns every known code in ascending order.
func Codes() []Code {
	codes := make([]Code, 0, len(descriptions))
	for c := range descriptions {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// IsKnown reports whether c is part of the documented code set.
func (c Code) IsKnown() bool {
	_, ok := descriptions[c]
	return ok
}

// Description returns the short documented meaning of the code.
func (c Code) Description() string {
	return descriptions[c]
}

// String returns the stable string form, e.g. "E1100".
func (c Code) String() string {
	return fmt.Sprintf("E%04d", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if !c.IsKnown() {
		return nil, fmt.Errorf("unknown violation code %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCode parses a string code such as "E1100".
func ParseCode(s string) (Code, error) {
	if !strings.HasPrefix(s, "E") {
		return 0, fmt.Errorf("invalid violation code %q: missing E prefix", s)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "E"))
	if err != nil {
		return 0, fmt.Errorf("invalid violation code %q: %w", s, err)
	}
	c := Code(n)
	if !c.IsKnown() {
		return 0, fmt.Errorf("unknown violation code %q", s)
	}
	return c, nil
}
