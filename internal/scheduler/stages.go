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
	"github.com/google/feedbacksim/internal/ganttlog"
	"github.com/google/feedbacksim/internal/process"
	"github.com/google/feedbacksim/internal/queue"
)

// blockOnIO transitions p to Blocked, advances its CPU cursor, records
// which queue it should return to, and enqueues it on the I/O wait set.
// Shared by all four stages' "burst finished, not the last" path.
func (s *Simulation) blockOnIO(p *process.Process, tag queue.Tag) {
	p.State = process.Blocked
	p.CPUIndex++
	s.recent.Set(p.PID, tag)
	s.io.Add(p)
}

// finishBurst handles the bookkeeping common to every stage when a
// process's current CPU burst reaches zero: either terminate it (if
// this was its last burst) or block it on I/O. Returns true if the
// process terminated.
func (s *Simulation) finishBurst(p *process.Process, tag queue.Tag, stageTag string) bool {
	if p.IsLastCPUBurst() {
		p.Terminate(s.currentTime)
		s.log.Add(stageTag, s.currentTime, "process %d finished all bursts", p.PID)
		return true
	}
	s.blockOnIO(p, tag)
	s.log.Add(stageTag, s.currentTime, "process %d finished current burst %d, adding to IO queue", p.PID, p.CPUIndex)
	return false
}

// runRR1 runs Q1 (round robin, quantum q1, demotion to Q2 after 10*q1
// cumulative ticks on the current burst), per spec.md §4.2.1.
func (s *Simulation) runRR1() {
	p, _ := s.q1.Get()
	if p.StartTime == process.Unset {
		p.StartTime = s.currentTime
	}
	segStart := s.currentTime
	s.log.Add("RR1", s.currentTime, "processing for process %d", p.PID)

	for {
		burst := p.CurrentCPUBurst()
		switch {
		case *burst == 0:
			s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.RR1})
			s.rr1TotalForBurst[p.PID] = 0
			s.finishBurst(p, queue.Q1, "RR1")
			return

		case s.rr1TotalForBurst[p.PID] == 10*s.params.Q1:
			s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.RR1})
			s.rr1TotalForBurst[p.PID] = 0
			p.State = process.Ready
			s.log.Add("RR1", s.currentTime, "process %d finished its limit, adding to next queue", p.PID)
			s.q2.Put(p)
			return

		case s.currentTime == segStart+s.params.Q1:
			s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.RR1})
			p.State = process.Ready
			s.log.Add("RR1", s.currentTime, "process %d finished its time quantum", p.PID)
			s.q1.Put(p)
			return

		default:
			*burst--
			checkInvariants(p)
			s.tick()
			s.rr1TotalForBurst[p.PID]++
			p.State = process.Running
		}
	}
}

// runRR2 runs Q2 (round robin, quantum q2 with per-burst local quantum
// resets, demotion to Q3 after 10*q2 cumulative ticks on the current
// burst), per spec.md §4.2.2. Unlike RR1, the head of Q2 is peeked (not
// dequeued) until a terminal classification removes or rotates it.
func (s *Simulation) runRR2() {
	p, _ := s.q2.Peek()
	if _, ok := s.stageStartTime[p.PID]; !ok {
		s.stageStartTime[p.PID] = s.currentTime
	}

	burst := p.CurrentCPUBurst()
	*burst--
	checkInvariants(p)
	s.tick()
	s.rr2TotalForBurst[p.PID]++
	s.rr2BurstElapsed[p.PID]++

	segStart := s.stageStartTime[p.PID]

	switch {
	case *burst == 0:
		s.q2.Remove(p.PID)
		s.finishBurst(p, queue.Q2, "RR2")
		s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.RR2})
		s.rr2TotalForBurst[p.PID] = 0
		s.rr2BurstElapsed[p.PID] = 0
		delete(s.stageStartTime, p.PID)

	case s.rr2TotalForBurst[p.PID] == 10*s.params.Q2:
		s.q2.Remove(p.PID)
		s.q3.Put(p)
		p.State = process.Ready
		s.log.Add("RR2", s.currentTime, "process %d finished its limit, adding to next queue", p.PID)
		s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.RR2})
		s.rr2TotalForBurst[p.PID] = 0
		s.rr2BurstElapsed[p.PID] = 0
		delete(s.stageStartTime, p.PID)

	case s.rr2BurstElapsed[p.PID] == s.params.Q2:
		s.q2.Remove(p.PID)
		s.q2.Put(p)
		p.State = process.Ready
		s.log.Add("RR2", s.currentTime, "process %d finished its time quantum", p.PID)
		s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.RR2})
		s.rr2BurstElapsed[p.PID] = 0
		delete(s.stageStartTime, p.PID)

	default:
		p.State = process.Ready
	}
}

// runSRTF runs Q3 (shortest-remaining-time-first over keys frozen at
// insertion time, with a three-strike preemption escape to Q4), per
// spec.md §4.2.3.
func (s *Simulation) runSRTF() {
	p, _ := s.q3.Peek()
	if _, ok := s.stageStartTime[p.PID]; !ok {
		s.stageStartTime[p.PID] = s.currentTime
	}

	if s.srtfPrev != nil && s.srtfPrev.PID != p.PID {
		s.srtfPrev.Preempted++
		if s.srtfPrev.Preempted == 3 {
			s.log.Add("SRTF", s.currentTime, "process %d was preempted 3 times", s.srtfPrev.PID)
			s.q3.Remove(s.srtfPrev.PID)
			s.q4.Put(s.srtfPrev)
			s.srtfPrev = nil
			return
		}
	}

	p.State = process.Running
	s.srtfPrev = p
	s.log.Add("SRTF", s.currentTime, "processing for process %d", p.PID)

	segStart := s.stageStartTime[p.PID]
	burst := p.CurrentCPUBurst()
	*burst--
	checkInvariants(p)
	s.tick()

	if *burst == 0 {
		s.q3.Remove(p.PID)
		s.srtfPrev = nil
		s.finishBurst(p, queue.Q3, "SRTF")
		s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.SRTF})
		delete(s.stageStartTime, p.PID)
	} else {
		p.State = process.Ready
	}
}

// runFCFS runs Q4 (first come first served, no preemption), per
// spec.md §4.2.4.
func (s *Simulation) runFCFS() {
	p, _ := s.q4.Peek()
	if _, ok := s.stageStartTime[p.PID]; !ok {
		s.stageStartTime[p.PID] = s.currentTime
	}
	p.State = process.Running
	s.log.Add("FCFS", s.currentTime, "processing for process %d", p.PID)

	segStart := s.stageStartTime[p.PID]
	burst := p.CurrentCPUBurst()
	*burst--
	checkInvariants(p)
	s.tick()

	if *burst == 0 {
		s.q4.Get()
		s.finishBurst(p, queue.Q4, "FCFS")
		s.gantt.Append(ganttlog.Segment{PID: p.PID, Start: segStart, End: s.currentTime, Algo: ganttlog.FCFS})
		delete(s.stageStartTime, p.PID)
	} else {
		p.State = process.Ready
	}
}
