package validator

import (
	"github.com/vrpkit/vrpctl/pkg/demand"
	"github.com/vrpkit/vrpctl/pkg/problem"
)

func at(hhmm string) string {
	return "2020-07-04T" + hhmm + ":00Z"
}

func window(from, to string) []string {
	return []string{at(from), at(to)}
}

var berlin = problem.Location{Lat: 52.52599, Lng: 13.45413}

func place(times ...[]string) problem.JobPlace {
	return problem.JobPlace{Location: berlin, Duration: 300, Times: times}
}

func task(d demand.Demand, places ...problem.JobPlace) problem.JobTask {
	return problem.JobTask{Places: places, Demand: d}
}

func deliveryJob(id string) problem.Job {
	return problem.Job{
		ID:         id,
		Deliveries: []problem.JobTask{task(demand.Demand{1}, place(window("09:00", "18:00")))},
	}
}

func shift(from, to string) problem.Shift {
	return problem.Shift{
		Start: problem.ShiftStart{Earliest: at(from), Location: berlin},
		End:   &problem.ShiftEnd{Latest: at(to), Location: berlin},
	}
}

func vehicleType(typeID string, ids ...string) problem.VehicleType {
	return problem.VehicleType{
		TypeID:     typeID,
		VehicleIDs: ids,
		Profile:    "car",
		Costs:      problem.VehicleCosts{Distance: 0.0002, Time: 0.005},
		Shifts:     []problem.Shift{shift("09:00", "18:00")},
		Capacity:   demand.Demand{10},
	}
}

// validProblem returns a fresh problem that passes every rule.
func validProblem() *problem.Problem {
	vt := vehicleType("vehicle", "vehicle_1", "vehicle_2")
	vt.Shifts[0].Breaks = []problem.VehicleBreak{{Times: [][]string{window("12:00", "14:00")}, Duration: 1800}}
	vt.Shifts[0].Reloads = []problem.VehicleReload{{Times: [][]string{window("10:00", "16:00")}, Location: berlin, Duration: 600}}

	return &problem.Problem{
		Plan: problem.Plan{
			Jobs: []problem.Job{
				deliveryJob("job1"),
				{
					ID:         "job2",
					Pickups:    []problem.JobTask{task(demand.Demand{2}, place())},
					Deliveries: []problem.JobTask{task(demand.Demand{2}, place())},
				},
			},
		},
		Fleet: problem.Fleet{
			Vehicles: []problem.VehicleType{vt},
			Profiles: []problem.Profile{{Name: "car", Type: "car"}},
		},
	}
}
