/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package problem

import (
	"github.com/vrpkit/vrpctl/pkg/demand"
)

// Reserved activity identifiers. Jobs may not use them as ids, relations may
// reference them.
const (
	ReservedDeparture = "departure"
	ReservedArrival   = "arrival"
	ReservedBreak     = "break"
	ReservedReload    = "reload"
)

// ReservedIDs lists the identifiers jobs cannot use.
var ReservedIDs = []string{ReservedDeparture, ReservedArrival, ReservedBreak, ReservedReload}

// IsReservedID reports whether id is a reserved activity identifier.
func IsReservedID(id string) bool {
	switch id {
	case ReservedDeparture, ReservedArrival, ReservedBreak, ReservedReload:
		return true
	default:
		return false
	}
}

// Problem is a complete routing problem definition.
type Problem struct {
	Plan       Plan        `json:"plan" yaml:"plan"`
	Fleet      Fleet       `json:"fleet" yaml:"fleet"`
	Objectives *Objectives `json:"objectives,omitempty" yaml:"objectives,omitempty"`
}

// Plan holds the jobs to serve and the relations between jobs and vehicles.
type Plan struct {
	Jobs      []Job      `json:"jobs" yaml:"jobs"`
	Relations []Relation `json:"relations,omitempty" yaml:"relations,omitempty"`
}

// Location is a geographic coordinate.
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Job is a unit of work with one or more tasks.
type Job struct {
	ID           string    `json:"id" yaml:"id"`
	Pickups      []JobTask `json:"pickups,omitempty" yaml:"pickups,omitempty"`
	Deliveries   []JobTask `json:"deliveries,omitempty" yaml:"deliveries,omitempty"`
	Replacements []JobTask `json:"replacements,omitempty" yaml:"replacements,omitempty"`
	Services     []JobTask `json:"services,omitempty" yaml:"services,omitempty"`
	Skills       []string  `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// TaskKind names a job task category.
type TaskKind string

const (
	TaskPickup      TaskKind = "pickup"
	TaskDelivery    TaskKind = "delivery"
	TaskReplacement TaskKind = "replacement"
	TaskService     TaskKind = "service"
)

// RequiresDemand reports whether tasks of this kind must carry a demand.
func (k TaskKind) RequiresDemand() bool {
	return k != TaskService
}

// KindedTask pairs a task with its category and position within it.
type KindedTask struct {
	Kind  TaskKind
	Index int
	Task  *JobTask
}

// Tasks returns all tasks of the job in category order: pickups, deliveries,
// replacements, services.
func (j *Job) Tasks() []KindedTask {
	var tasks []KindedTask
	add := func(kind TaskKind, list []JobTask) {
		for i := range list {
			tasks = append(tasks, KindedTask{Kind: kind, Index: i, Task: &list[i]})
		}
	}
	add(TaskPickup, j.Pickups)
	add(TaskDelivery, j.Deliveries)
	add(TaskReplacement, j.Replacements)
	add(TaskService, j.Services)
	return tasks
}

// JobTask is a single pickup, delivery, replacement or service.
type JobTask struct {
	Places []JobPlace    `json:"places" yaml:"places"`
	Demand demand.Demand `json:"demand,omitempty" yaml:"demand,omitempty"`
	Tag    string        `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// JobPlace is one alternative place where a task can be performed.
type JobPlace struct {
	Location Location   `json:"location" yaml:"location"`
	Duration float64    `json:"duration" yaml:"duration"`
	Times    [][]string `json:"times,omitempty" yaml:"times,omitempty"`
}

// RelationType controls how strictly relation jobs are ordered in a tour.
type RelationType string

const (
	RelationStrict   RelationType = "strict"
	RelationSequence RelationType = "sequence"
	RelationAny      RelationType = "any"
)

// IsOrdered reports whether the relation imposes an order on its jobs.
func (t RelationType) IsOrdered() bool {
	return t == RelationStrict || t == RelationSequence
}

// Relation binds jobs to a vehicle, optionally with ordering.
type Relation struct {
	Type       RelationType `json:"type" yaml:"type"`
	Jobs       []string     `json:"jobs" yaml:"jobs"`
	VehicleID  string       `json:"vehicleId,omitempty" yaml:"vehicleId,omitempty"`
	ShiftIndex *int         `json:"shiftIndex,omitempty" yaml:"shiftIndex,omitempty"`
}

// Fleet holds vehicle types and routing profiles.
type Fleet struct {
	Vehicles []VehicleType `json:"vehicles" yaml:"vehicles"`
	Profiles []Profile     `json:"profiles" yaml:"profiles"`
}

// VehicleType describes a group of identical vehicles.
type VehicleType struct {
	TypeID     string         `json:"typeId" yaml:"typeId"`
	VehicleIDs []string       `json:"vehicleIds" yaml:"vehicleIds"`
	Profile    string         `json:"profile" yaml:"profile"`
	Costs      VehicleCosts   `json:"costs" yaml:"costs"`
	Shifts     []Shift        `json:"shifts" yaml:"shifts"`
	Capacity   demand.Demand  `json:"capacity" yaml:"capacity"`
	Skills     []string       `json:"skills,omitempty" yaml:"skills,omitempty"`
	Limits     *VehicleLimits `json:"limits,omitempty" yaml:"limits,omitempty"`
}

// VehicleCosts are the cost coefficients of a vehicle type.
type VehicleCosts struct {
	Fixed    *float64 `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Distance float64  `json:"distance" yaml:"distance"`
	Time     float64  `json:"time" yaml:"time"`
}

// Shift is a working period of a vehicle.
type Shift struct {
	Start   ShiftStart      `json:"start" yaml:"start"`
	End     *ShiftEnd       `json:"end,omitempty" yaml:"end,omitempty"`
	Breaks  []VehicleBreak  `json:"breaks,omitempty" yaml:"breaks,omitempty"`
	Reloads []VehicleReload `json:"reloads,omitempty" yaml:"reloads,omitempty"`
}

// ShiftStart is where and when a shift begins.
type ShiftStart struct {
	Earliest string   `json:"earliest" yaml:"earliest"`
	Location Location `json:"location" yaml:"location"`
}

// ShiftEnd is where and when a shift must be over. A nil end means the vehicle
// does not return.
type ShiftEnd struct {
	Latest   string   `json:"latest" yaml:"latest"`
	Location Location `json:"location" yaml:"location"`
}

// VehicleBreak is a driver break that must start within one of its windows.
type VehicleBreak struct {
	Times     [][]string `json:"times" yaml:"times"`
	Duration  float64    `json:"duration" yaml:"duration"`
	Locations []Location `json:"locations,omitempty" yaml:"locations,omitempty"`
}

// VehicleReload is a depot visit where the vehicle can be reloaded.
type VehicleReload struct {
	Times    [][]string `json:"times,omitempty" yaml:"times,omitempty"`
	Location Location   `json:"location" yaml:"location"`
	Duration float64    `json:"duration" yaml:"duration"`
	Tag      string     `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// VehicleLimits restricts how a vehicle may be used.
type VehicleLimits struct {
	MaxDistance  *float64     `json:"maxDistance,omitempty" yaml:"maxDistance,omitempty"`
	ShiftTime    *float64     `json:"shiftTime,omitempty" yaml:"shiftTime,omitempty"`
	AllowedAreas [][]Location `json:"allowedAreas,omitempty" yaml:"allowedAreas,omitempty"`
}

// Profile is a named routing profile.
type Profile struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ObjectiveType tags an objective function.
type ObjectiveType string

const (
	ObjectiveMinimizeCost       ObjectiveType = "minimize-cost"
	ObjectiveMinimizeDistance   ObjectiveType = "minimize-distance"
	ObjectiveMinimizeDuration   ObjectiveType = "minimize-duration"
	ObjectiveMinimizeUnassigned ObjectiveType = "minimize-unassigned"
	ObjectiveMinimizeTours      ObjectiveType = "minimize-tours"
	ObjectiveMaximizeTours      ObjectiveType = "maximize-tours"
	ObjectiveBalanceMaxLoad     ObjectiveType = "balance-max-load"
	ObjectiveBalanceActivities  ObjectiveType = "balance-activities"
	ObjectiveBalanceDistance    ObjectiveType = "balance-distance"
	ObjectiveBalanceDuration    ObjectiveType = "balance-duration"
)

// IsCost reports whether the objective reduces a solution to a single
// minimizable cost.
func (t ObjectiveType) IsCost() bool {
	switch t {
	case ObjectiveMinimizeCost, ObjectiveMinimizeDistance, ObjectiveMinimizeDuration:
		return true
	default:
		return false
	}
}

// Objectives groups objectives by priority.
type Objectives struct {
	Primary   []Objective `json:"primary" yaml:"primary"`
	Secondary []Objective `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Objective is a single objective function with optional parameters.
type Objective struct {
	Type    ObjectiveType     `json:"type" yaml:"type"`
	Options *ObjectiveOptions `json:"options,omitempty" yaml:"options,omitempty"`
}

// ObjectiveOptions tune balancing objectives.
type ObjectiveOptions struct {
	Threshold *float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}
