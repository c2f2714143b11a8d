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
// Package process defines the workload unit simulated by the scheduler:
// a process's identity, arrival, alternating CPU/I-O burst plan, and the
// mutable progress cursors and timestamps the scheduler advances.
package process

import "fmt"

// State is one stage of a Process's lifecycle.
type State int8

const (
	// New processes have not yet arrived.
	New State = iota
	// NewAdded processes have arrived and been enqueued on Q1, but have not
	// yet been examined by the scheduler core.
	NewAdded
	// Ready processes are eligible to run but are not currently running.
	Ready
	// Running processes are currently holding the CPU.
	Running
	// Blocked processes are waiting on an I/O burst.
	Blocked
	// Terminated processes have completed all of their CPU bursts.
	Terminated
)

func (s State) String() string {
	switch s {
	case New:
		return "new"
	case NewAdded:
		return "new_added"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Unset is the sentinel value for timestamps that have not yet been
// recorded (StartTime, CompleteTime).
const Unset = -1

// Process is a single workload unit: an identity, an arrival time, an
// alternating sequence of CPU and I/O bursts, and the mutable cursors and
// timestamps the scheduler advances as it runs.
//
// CPUBursts and IOBursts are mutated in place as the scheduler consumes
// them; OriginalCPUBursts and OriginalIOBursts retain the values supplied
// at construction time so that callers can report demand alongside the
// post-simulation zeroed-out working copies.
type Process struct {
	PID          int
	ArrivalTime  int
	CPUBursts    []int
	IOBursts     []int
	CPUIndex     int
	IOIndex      int
	State        State
	Preempted    int
	StartTime    int
	CompleteTime int

	OriginalCPUBursts []int
	OriginalIOBursts  []int
}

// NewProcess constructs a Process in state New with cursors at zero and
// sentinel start/complete times. cpuBursts must have length >= 1 and
// ioBursts must have length len(cpuBursts)-1; NewProcess does not itself
// validate this (see workload.ParseLine for the boundary check) but the
// scheduler assumes it.
func NewProcess(pid, arrivalTime int, cpuBursts, ioBursts []int) *Process {
	cb := append([]int(nil), cpuBursts...)
	ib := append([]int(nil), ioBursts...)
	return &Process{
		PID:               pid,
		ArrivalTime:       arrivalTime,
		CPUBursts:         cb,
		IOBursts:          ib,
		State:             New,
		StartTime:         Unset,
		CompleteTime:      Unset,
		OriginalCPUBursts: append([]int(nil), cpuBursts...),
		OriginalIOBursts:  append([]int(nil), ioBursts...),
	}
}

// CurrentCPUBurst returns a pointer to the live CPU demand cell for the
// process's current burst, so callers can decrement it in place.
func (p *Process) CurrentCPUBurst() *int {
	return &p.CPUBursts[p.CPUIndex]
}

// IsLastCPUBurst reports whether CPUIndex refers to the final CPU burst.
func (p *Process) IsLastCPUBurst() bool {
	return p.CPUIndex == len(p.CPUBursts)-1
}

// RemainingCPU sums the CPU demand of the current and all subsequent
// bursts. Used as the Q3 (SRTF) priority key, captured at insertion time.
func (p *Process) RemainingCPU() int {
	total := 0
	for _, b := range p.CPUBursts[p.CPUIndex:] {
		total += b
	}
	return total
}

// Terminate transitions the process to Terminated, records completeTime,
// and resets its burst cursors, mirroring the original implementation's
// terminate() which zeros cpu_index/io_index on completion.
func (p *Process) Terminate(completeTime int) {
	p.State = Terminated
	p.CPUIndex = 0
	p.IOIndex = 0
	p.CompleteTime = completeTime
}

// WaitingTime returns StartTime - ArrivalTime. Only meaningful once
// StartTime has been set (i.e. is no longer Unset).
func (p *Process) WaitingTime() int {
	return p.StartTime - p.ArrivalTime
}

// TurnaroundTime returns CompleteTime - ArrivalTime. Only meaningful once
// CompleteTime has been set.
func (p *Process) TurnaroundTime() int {
	return p.CompleteTime - p.ArrivalTime
}

func (p *Process) String() string {
	return fmt.Sprintf("pid=%d state=%s arrival=%d cpu_idx=%d io_idx=%d", p.PID, p.State, p.ArrivalTime, p.CPUIndex, p.IOIndex)
}
