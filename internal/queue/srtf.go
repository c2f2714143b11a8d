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
package queue

import (
	"container/heap"

	"github.com/google/feedbacksim/internal/process"
)

// srtfEntry is one element resident in an SRTF queue: a process together
// with the remaining-CPU key frozen at insertion time, and a monotonic
// sequence number used to break ties in insertion order.
type srtfEntry struct {
	p       *process.Process
	key     int
	seq     int
	index   int
}

// srtfHeap implements container/heap.Interface over srtfEntry, ordered
// by (key, seq) ascending -- the classic shortest-remaining-time-first
// ordering with a stable insertion-order tiebreak, per spec.md §3.
type srtfHeap []*srtfEntry

func (h srtfHeap) Len() int { return len(h) }
func (h srtfHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}
func (h srtfHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *srtfHeap) Push(x interface{}) {
	e := x.(*srtfEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *srtfHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// SRTF is Q3: a min-priority queue of processes keyed by remaining CPU
// demand, captured at insertion time (not re-sorted as running
// processes consume further time), with ties broken by insertion order.
// Removal by PID is supported for the three-strike escape (spec.md
// §4.2.3) and for I/O-return routing.
//
// A heap (rather than a linear scan) is used here because Q3's ordering
// discipline genuinely needs a priority structure -- the teacher's trace
// analysis has no analogous min-priority admission queue to imitate, so
// this is grounded on Go's standard container/heap idiom instead (see
// DESIGN.md).
type SRTF struct {
	h       srtfHeap
	nextSeq int
	byPID   map[int]*srtfEntry
}

// Put inserts p into Q3 keyed by its current remaining CPU demand.
func (s *SRTF) Put(p *process.Process) {
	if s.byPID == nil {
		s.byPID = map[int]*srtfEntry{}
	}
	e := &srtfEntry{p: p, key: p.RemainingCPU(), seq: s.nextSeq}
	s.nextSeq++
	s.byPID[p.PID] = e
	heap.Push(&s.h, e)
}

// Peek returns the process with the minimum (remaining CPU, insertion
// order) key, without removing it, and whether Q3 was non-empty.
func (s *SRTF) Peek() (*process.Process, bool) {
	if len(s.h) == 0 {
		return nil, false
	}
	return s.h[0].p, true
}

// Remove deletes the process with the given PID from Q3, wherever it
// currently sits in heap order. Reports whether it was found.
func (s *SRTF) Remove(pid int) bool {
	e, ok := s.byPID[pid]
	if !ok {
		return false
	}
	heap.Remove(&s.h, e.index)
	delete(s.byPID, pid)
	return true
}

// Empty reports whether Q3 holds no processes.
func (s *SRTF) Empty() bool {
	return len(s.h) == 0
}

// Len returns the number of processes currently in Q3.
func (s *SRTF) Len() int {
	return len(s.h)
}

// Items returns Q3's contents in heap order (not necessarily sorted).
// The returned slice must not be mutated by the caller.
func (s *SRTF) Items() []*process.Process {
	items := make([]*process.Process, len(s.h))
	for i, e := range s.h {
		items[i] = e.p
	}
	return items
}
