//
// Copyright 2019 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
//
package scheduler

import (
	"github.com/google/feedbacksim/internal/config"
	"github.com/google/feedbacksim/internal/ganttlog"
	"github.com/google/feedbacksim/internal/process"
)

// Result is everything a completed (or safety-capped) simulation run
// produced: the Gantt trace, the event log, the final process states,
// and the raw counters metrics are derived from.
type Result struct {
	Gantt       []ganttlog.Segment
	EventLog    []string
	Processes   []*process.Process
	FinalTime   int
	FreeCPUTime int
	// HitSafetyBound is true if the run stopped because current_time
	// reached params.MaxTime before the workload fully drained, per
	// spec.md §7 (runaway simulation).
	HitSafetyBound bool
}

// Run drives the scheduler core's top-level loop (spec.md §4.2) to
// completion: on every iteration it admits newly arrived processes,
// then lets the highest-priority non-empty queue run one scheduling
// decision, until every process has terminated and all ready queues are
// empty, or the safety bound on simulated time is reached.
//
// processes is consumed in place -- its burst cells are mutated as the
// simulation proceeds -- so callers that need the original demand
// figures should consult Result.Processes[i].OriginalCPUBursts /
// OriginalIOBursts rather than their own copy.
func Run(processes []*process.Process, params config.Params) *Result {
	sim := New(processes, params)

	for !(sim.allTerminated() && sim.allQueuesEmpty()) && sim.currentTime < sim.params.MaxTime {
		sim.admitArrivals()
		switch {
		case !sim.q1.Empty():
			sim.runRR1()
		case !sim.q2.Empty():
			sim.runRR2()
		case !sim.q3.Empty():
			sim.runSRTF()
		case !sim.q4.Empty():
			sim.runFCFS()
		default:
			sim.tick()
			sim.freeCPUTime++
		}
	}

	hitBound := sim.currentTime >= sim.params.MaxTime && !(sim.allTerminated() && sim.allQueuesEmpty())

	return &Result{
		Gantt:          sim.gantt.Segments(),
		EventLog:       sim.log.Lines(),
		Processes:      sim.processes,
		FinalTime:      sim.currentTime,
		FreeCPUTime:    sim.freeCPUTime,
		HitSafetyBound: hitBound,
	}
}
