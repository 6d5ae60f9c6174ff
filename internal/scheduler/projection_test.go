package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandstem/tdmasched/internal/conflict"
	"github.com/wandstem/tdmasched/internal/scheduler"
)

func TestProject_AggregatesTXRXPairsIntoTransmissions(t *testing.T) {
	sched := scheduler.Schedule{
		{Timeslot: 0, Node: 0, Activity: conflict.TX},
		{Timeslot: 0, Node: 1, Activity: conflict.RX},
		{Timeslot: 1, Node: 3, Activity: conflict.TX},
		{Timeslot: 1, Node: 2, Activity: conflict.RX},
	}

	got := scheduler.Project(sched)

	assert.Equal(t, []scheduler.Transmission{
		{Timeslot: 0, Src: 0, Dst: 1},
		{Timeslot: 1, Src: 3, Dst: 2},
	}, got)
}

func TestProject_EmptyScheduleYieldsEmptyProjection(t *testing.T) {
	assert.Empty(t, scheduler.Project(nil))
}
