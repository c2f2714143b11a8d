package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/feedbacksim/internal/config"
	"github.com/google/feedbacksim/internal/ganttlog"
	"github.com/google/feedbacksim/internal/process"
	"github.com/google/feedbacksim/internal/scheduler"
	"github.com/google/feedbacksim/internal/testhelpers"
)

func runParams(q1, q2 int) config.Params {
	return config.Params{Q1: q1, Q2: q2, Alpha: 0.5, MaxTime: 1000}
}

// S1 -- single process, single burst.
func TestRunSingleProcessSingleBurst(t *testing.T) {
	procs := []*process.Process{process.NewProcess(1, 0, []int{5}, nil)}
	result := scheduler.Run(procs, runParams(2, 3))

	want := []ganttlog.Segment{
		{PID: 1, Start: 0, End: 2, Algo: ganttlog.RR1},
		{PID: 1, Start: 2, End: 4, Algo: ganttlog.RR1},
		{PID: 1, Start: 4, End: 5, Algo: ganttlog.RR1},
	}
	testhelpers.AssertNoDiff(t, want, result.Gantt, "S1 gantt")

	require.Len(t, result.Processes, 1)
	p := result.Processes[0]
	assert.Equal(t, 5, p.CompleteTime)
	assert.Equal(t, 0, p.WaitingTime())
	assert.Equal(t, 5, result.FinalTime)
	assert.False(t, result.HitSafetyBound)
}

// S2 -- two processes, pure RR1 fairness.
func TestRunTwoProcessesRR1Fairness(t *testing.T) {
	procs := []*process.Process{
		process.NewProcess(1, 0, []int{4}, nil),
		process.NewProcess(2, 0, []int{4}, nil),
	}
	result := scheduler.Run(procs, runParams(2, 3))

	want := []ganttlog.Segment{
		{PID: 1, Start: 0, End: 2, Algo: ganttlog.RR1},
		{PID: 2, Start: 2, End: 4, Algo: ganttlog.RR1},
		{PID: 1, Start: 4, End: 6, Algo: ganttlog.RR1},
		{PID: 2, Start: 6, End: 8, Algo: ganttlog.RR1},
	}
	testhelpers.AssertNoDiff(t, want, result.Gantt, "S2 gantt")

	byPID := map[int]*process.Process{}
	for _, p := range result.Processes {
		byPID[p.PID] = p
	}
	assert.Equal(t, 6, byPID[1].CompleteTime)
	assert.Equal(t, 8, byPID[2].CompleteTime)
	assert.Equal(t, 0, byPID[1].WaitingTime())
	assert.Equal(t, 2, byPID[2].WaitingTime())
	assert.Equal(t, 8, result.FinalTime)
}

// S4 -- CPU/IO alternation: RR1, block on IO, return to RR1, terminate.
func TestRunCPUIOAlternation(t *testing.T) {
	procs := []*process.Process{process.NewProcess(1, 0, []int{3, 3}, []int{4})}
	result := scheduler.Run(procs, runParams(3, 3))

	want := []ganttlog.Segment{
		{PID: 1, Start: 0, End: 3, Algo: ganttlog.RR1},
		{PID: 1, Start: 7, End: 10, Algo: ganttlog.RR1},
	}
	testhelpers.AssertNoDiff(t, want, result.Gantt, "S4 gantt")

	require.Len(t, result.Processes, 1)
	assert.Equal(t, 10, result.Processes[0].CompleteTime)
	assert.Equal(t, 4, result.FreeCPUTime, "the 4-tick IO burst should be free CPU time")
}

// S3 -- sustained RR1 usage demotes a process to RR2 after 10*q1 ticks on
// the current burst.
func TestRunRR1DemotesToRR2After10Quanta(t *testing.T) {
	procs := []*process.Process{process.NewProcess(1, 0, []int{25}, nil)}
	result := scheduler.Run(procs, runParams(2, 3))

	require.NotEmpty(t, result.Gantt)
	var sawRR2 bool
	for _, seg := range result.Gantt {
		if seg.Algo == ganttlog.RR1 {
			assert.LessOrEqual(t, seg.End-seg.Start, 2, "no RR1 segment should exceed q1's quantum")
		}
		if seg.Algo == ganttlog.RR2 {
			sawRR2 = true
		}
	}
	assert.True(t, sawRR2, "process should have been demoted into RR2 after 20 ticks on RR1")
	assert.Equal(t, 25, result.Processes[0].TurnaroundTime()-result.Processes[0].WaitingTime())
}

// Property: the run terminates either by full completion or by hitting
// the safety bound; this mixed CPU/IO workload completes fully, with
// every process terminated well before the bound.
func TestRunTerminatesOrHitsSafetyBound(t *testing.T) {
	procs := []*process.Process{
		process.NewProcess(1, 0, []int{10, 2, 10}, []int{3, 3}),
		process.NewProcess(2, 3, []int{6}, nil),
	}
	result := scheduler.Run(procs, runParams(2, 4))

	assert.GreaterOrEqual(t, result.FinalTime, 0)
	for _, p := range result.Processes {
		assert.Equal(t, process.Terminated, p.State)
	}
	assert.False(t, result.HitSafetyBound)
}

// Property: every committed Gantt segment ends no later than the next
// committed segment starts, so no two segments overlap.
func TestGanttSegmentsDoNotOverlap(t *testing.T) {
	procs := []*process.Process{
		process.NewProcess(1, 0, []int{6}, nil),
		process.NewProcess(2, 0, []int{6}, nil),
		process.NewProcess(3, 1, []int{6}, nil),
	}
	result := scheduler.Run(procs, runParams(2, 2))

	for i := 1; i < len(result.Gantt); i++ {
		prev, cur := result.Gantt[i-1], result.Gantt[i]
		assert.LessOrEqual(t, prev.End, cur.Start, "segments must not overlap")
	}
}

// Determinism: the same workload and parameters always produce the same
// trace, per spec.md's no-wall-clock-dependence requirement.
func TestRunIsDeterministic(t *testing.T) {
	newProcs := func() []*process.Process {
		return []*process.Process{
			process.NewProcess(1, 0, []int{7, 2}, []int{3}),
			process.NewProcess(2, 2, []int{5}, nil),
		}
	}
	first := scheduler.Run(newProcs(), runParams(2, 3))
	second := scheduler.Run(newProcs(), runParams(2, 3))

	testhelpers.AssertNoDiff(t, first.Gantt, second.Gantt, "determinism")
	assert.Equal(t, first.FinalTime, second.FinalTime)
	assert.Equal(t, first.EventLog, second.EventLog)
}
