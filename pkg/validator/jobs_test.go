package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrpkit/vrpctl/pkg/demand"
	"github.com/vrpkit/vrpctl/pkg/problem"
)

func TestValidateJobs_Valid(t *testing.T) {
	assert.Empty(t, validateJobs(validProblem()))
}

func TestValidateJobs_DuplicateID(t *testing.T) {
	p := validProblem()
	p.Plan.Jobs = append(p.Plan.Jobs, deliveryJob("job1"), deliveryJob("job1"), deliveryJob("job2"))

	got := validateJobs(p)
	require.Len(t, got, 2)
	assert.Equal(t, CodeDuplicateJobID, got[0].Code)
	assert.Equal(t, "job1", got[0].Subject)
	assert.Equal(t, CodeDuplicateJobID, got[1].Code)
	assert.Equal(t, "job2", got[1].Subject)
}

func TestValidateJobs_DuplicateIDIsCaseSensitive(t *testing.T) {
	p := validProblem()
	p.Plan.Jobs = append(p.Plan.Jobs, deliveryJob("JOB1"))
	assert.Empty(t, validateJobs(p))
}

func TestValidateJobs_Codes(t *testing.T) {
	tests := []struct {
		name string
		job  problem.Job
		want []Code
	}{
		{
			name: "delivery without demand",
			job: problem.Job{ID: "j", Deliveries: []problem.JobTask{
				task(nil, place()),
			}},
			want: []Code{CodeInvalidTaskDemand},
		},
		{
			name: "service with demand",
			job: problem.Job{ID: "j", Services: []problem.JobTask{
				task(demand.Demand{1}, place()),
			}},
			want: []Code{CodeInvalidTaskDemand},
		},
		{
			name: "service without demand",
			job: problem.Job{ID: "j", Services: []problem.JobTask{
				task(nil, place()),
			}},
		},
		{
			name: "replacement without demand",
			job: problem.Job{ID: "j", Replacements: []problem.JobTask{
				task(nil, place()),
			}},
			want: []Code{CodeInvalidTaskDemand},
		},
		{
			name: "off by one pickup and delivery",
			job: problem.Job{ID: "j",
				Pickups:    []problem.JobTask{task(demand.Demand{2, 1}, place())},
				Deliveries: []problem.JobTask{task(demand.Demand{2, 2}, place())},
			},
			want: []Code{CodeDemandImbalance},
		},
		{
			name: "split deliveries balance one pickup",
			job: problem.Job{ID: "j",
				Pickups: []problem.JobTask{task(demand.Demand{3}, place())},
				Deliveries: []problem.JobTask{
					task(demand.Demand{1}, place()),
					task(demand.Demand{2}, place()),
				},
			},
		},
		{
			name: "pickup only is never imbalanced",
			job: problem.Job{ID: "j",
				Pickups: []problem.JobTask{task(demand.Demand{5}, place())},
			},
		},
		{
			name: "malformed time window",
			job: problem.Job{ID: "j", Deliveries: []problem.JobTask{
				task(demand.Demand{1}, place([]string{at("09:00")})),
			}},
			want: []Code{CodeInvalidJobTimes},
		},
		{
			name: "reversed time window",
			job: problem.Job{ID: "j", Deliveries: []problem.JobTask{
				task(demand.Demand{1}, place(window("18:00", "09:00"))),
			}},
			want: []Code{CodeInvalidJobTimes},
		},
		{
			name: "overlapping time windows",
			job: problem.Job{ID: "j", Deliveries: []problem.JobTask{
				task(demand.Demand{1}, place(window("09:00", "12:00"), window("11:00", "14:00"))),
			}},
			want: []Code{CodeInvalidJobTimes},
		},
		{
			name: "disjoint time windows",
			job: problem.Job{ID: "j", Deliveries: []problem.JobTask{
				task(demand.Demand{1}, place(window("09:00", "12:00"), window("13:00", "14:00"))),
			}},
		},
		{
			name: "reserved id",
			job:  deliveryJob("departure"),
			want: []Code{CodeReservedJobID},
		},
		{
			name: "no tasks",
			job:  problem.Job{ID: "j"},
			want: []Code{CodeJobWithoutTasks},
		},
		{
			name: "negative duration",
			job: problem.Job{ID: "j", Services: []problem.JobTask{
				{Places: []problem.JobPlace{{Location: berlin, Duration: -1}}},
			}},
			want: []Code{CodeNegativeDuration},
		},
		{
			name: "negative demand",
			job: problem.Job{ID: "j", Deliveries: []problem.JobTask{
				task(demand.Demand{1, -1}, place()),
			}},
			want: []Code{CodeNegativeDemandValue},
		},
		{
			name: "codes in ascending order",
			job: problem.Job{ID: "break", Services: []problem.JobTask{
				{Places: []problem.JobPlace{{Location: berlin, Duration: -5, Times: [][]string{{"bad"}}}}, Demand: demand.Demand{-1}},
			}},
			want: []Code{CodeInvalidTaskDemand, CodeInvalidJobTimes, CodeReservedJobID, CodeNegativeDuration, CodeNegativeDemandValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProblem()
			p.Plan.Jobs = []problem.Job{tt.job}
			got := CodesOf(validateJobs(p))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateJobs_DemandImbalanceContext(t *testing.T) {
	p := validProblem()
	p.Plan.Jobs = []problem.Job{{
		ID:         "job",
		Pickups:    []problem.JobTask{task(demand.Demand{1}, place())},
		Deliveries: []problem.JobTask{task(demand.Demand{2}, place())},
	}}

	got := validateJobs(p)
	require.Len(t, got, 1)
	assert.Equal(t, CodeDemandImbalance, got[0].Code)
	assert.Equal(t, []int{1}, got[0].Context["pickup"])
	assert.Equal(t, []int{2}, got[0].Context["delivery"])
}

func TestValidateJobs_PlaceLabels(t *testing.T) {
	p := validProblem()
	p.Plan.Jobs = []problem.Job{{
		ID: "job",
		Deliveries: []problem.JobTask{task(demand.Demand{1},
			place(window("09:00", "10:00")),
			place(window("10:00", "09:00")),
		)},
	}}

	got := validateJobs(p)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"delivery[0].places[1]"}, got[0].Context["places"])
	assert.Contains(t, got[0].Message, "'delivery[0].places[1]'")
}
