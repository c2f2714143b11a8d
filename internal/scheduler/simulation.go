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
// Package scheduler implements the tick engine (C5) and scheduler core
// (C6) of the four-level feedback scheduler described in spec.md: the
// interaction of Q1 (RR1), Q2 (RR2), Q3 (SRTF), and Q4 (FCFS), their
// demotion and preemption policy, and the I/O-return policy.
package scheduler

import (
	"sort"

	"github.com/google/feedbacksim/internal/config"
	"github.com/google/feedbacksim/internal/eventlog"
	"github.com/google/feedbacksim/internal/ganttlog"
	"github.com/google/feedbacksim/internal/process"
	"github.com/google/feedbacksim/internal/queue"
)

// Simulation holds all mutable state for one run of the scheduler:
// the four ready queues, the I/O wait set, the recent-queue routing map,
// the per-PID bookkeeping counters of §3, and the output logs.
type Simulation struct {
	params config.Params

	currentTime  int
	freeCPUTime  int
	processes    []*process.Process
	notArrived   []*process.Process // sorted by (arrival_time, pid), still in state New

	q1 queue.FIFO
	q2 queue.FIFO
	q3 queue.SRTF
	q4 queue.FIFO
	io queue.IOSet

	recent queue.RecentQueue

	rr1TotalForBurst map[int]int
	rr2TotalForBurst map[int]int
	rr2BurstElapsed  map[int]int
	stageStartTime   map[int]int

	srtfPrev *process.Process // the process SRTF ran last decision, for preemption detection

	gantt *ganttlog.Log
	log   *eventlog.Log
}

// New constructs a Simulation over the given processes with the given
// parameters. Processes are copied by reference; the caller must not
// reuse them across runs, since the scheduler mutates burst cells and
// lifecycle fields in place.
func New(processes []*process.Process, params config.Params) *Simulation {
	s := &Simulation{
		params:           params,
		processes:        append([]*process.Process(nil), processes...),
		rr1TotalForBurst: map[int]int{},
		rr2TotalForBurst: map[int]int{},
		rr2BurstElapsed:  map[int]int{},
		stageStartTime:   map[int]int{},
		gantt:            &ganttlog.Log{},
		log:              &eventlog.Log{},
	}
	s.notArrived = append([]*process.Process(nil), processes...)
	sort.SliceStable(s.notArrived, func(i, j int) bool {
		a, b := s.notArrived[i], s.notArrived[j]
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.PID < b.PID
	})
	return s
}

// CurrentTime returns the simulation's current virtual time.
func (s *Simulation) CurrentTime() int {
	return s.currentTime
}

// Gantt returns the accumulated Gantt log.
func (s *Simulation) Gantt() *ganttlog.Log {
	return s.gantt
}

// EventLog returns the accumulated scheduling event log.
func (s *Simulation) EventLog() *eventlog.Log {
	return s.log
}

// FreeCPUTime returns the number of ticks during which the CPU served no
// process (spec.md §4.2.5).
func (s *Simulation) FreeCPUTime() int {
	return s.freeCPUTime
}

// allTerminated reports whether every process in the workload has
// reached the Terminated state.
func (s *Simulation) allTerminated() bool {
	for _, p := range s.processes {
		if p.State != process.Terminated {
			return false
		}
	}
	return true
}

// allQueuesEmpty reports whether Q1..Q4 hold no processes.
func (s *Simulation) allQueuesEmpty() bool {
	return s.q1.Empty() && s.q2.Empty() && s.q3.Empty() && s.q4.Empty()
}

// admitArrivals promotes every New process whose ArrivalTime has been
// reached to NewAdded and enqueues it on Q1, in ascending
// (arrival_time, pid) order, per spec.md §4.1 step 3. It is safe to call
// repeatedly; already-admitted processes are skipped.
func (s *Simulation) admitArrivals() {
	i := 0
	for i < len(s.notArrived) && s.notArrived[i].ArrivalTime <= s.currentTime {
		p := s.notArrived[i]
		p.State = process.NewAdded
		s.q1.Put(p)
		i++
	}
	s.notArrived = s.notArrived[i:]
}

// serviceIO decrements the current I/O burst counter of every process
// waiting on I/O by one tick; processes whose burst completes are
// returned to the ready queue named by their recent-queue tag, per
// spec.md §4.1 step 4.
func (s *Simulation) serviceIO() {
	items := s.io.Items()
	var stillWaiting []*process.Process
	for _, p := range items {
		p.IOBursts[p.IOIndex]--
		if p.IOBursts[p.IOIndex] > 0 {
			stillWaiting = append(stillWaiting, p)
			continue
		}
		tag := s.recent.Get(p.PID)
		if tag == queue.None {
			// No recent queue recorded: process has never left for I/O,
			// which should not happen for a process in the I/O set. Keep it
			// waiting rather than silently dropping it.
			stillWaiting = append(stillWaiting, p)
			continue
		}
		p.State = process.Ready
		p.IOIndex++
		s.log.Add("IO", s.currentTime, "process %d finished IO, returning to queue", p.PID)
		s.routeToQueue(p, tag)
	}
	s.io.Replace(stillWaiting)
}

// routeToQueue enqueues p onto the ready queue named by tag. Q3
// insertions use p's current remaining-CPU key, per spec.md §4.1.
func (s *Simulation) routeToQueue(p *process.Process, tag queue.Tag) {
	switch tag {
	case queue.Q1:
		s.q1.Put(p)
	case queue.Q2:
		s.q2.Put(p)
	case queue.Q3:
		s.q3.Put(p)
	case queue.Q4:
		s.q4.Put(p)
	}
}

// tick advances virtual time by exactly one unit and performs admission
// and I/O servicing, per spec.md §4.1.
func (s *Simulation) tick() {
	s.currentTime++
	s.admitArrivals()
	s.serviceIO()
}
