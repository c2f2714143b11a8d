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

import "github.com/google/feedbacksim/internal/process"

// Tag names which of Q1..Q4 a process most recently ran on, so that an
// I/O-completing process can be routed back to the correct ready queue.
type Tag int8

const (
	// None means the process has never left for I/O.
	None Tag = iota
	Q1
	Q2
	Q3
	Q4
)

// IOSet is the I/O wait multiset: every resident process's current I/O
// burst counter decrements once per tick, independent of which other
// process is holding the CPU.
type IOSet struct {
	items []*process.Process
}

// Add places p into the I/O wait set.
func (s *IOSet) Add(p *process.Process) {
	s.items = append(s.items, p)
}

// Items returns the set's contents. The returned slice must not be
// mutated by the caller.
func (s *IOSet) Items() []*process.Process {
	return s.items
}

// RemoveAt deletes the item at the given index, preserving the relative
// order of the rest (order is not semantically meaningful for this set,
// but stable removal keeps iteration simple for callers).
func (s *IOSet) RemoveAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Len returns the number of processes currently waiting on I/O.
func (s *IOSet) Len() int {
	return len(s.items)
}

// Replace swaps the set's entire contents for items, used after a
// servicing pass has partitioned the set into still-waiting and
// returned processes.
func (s *IOSet) Replace(items []*process.Process) {
	s.items = items
}

// RecentQueue maps a PID to the Tag of the ready queue it most recently
// ran on. It is modeled as an identifier rather than a queue reference
// so that it never owns the queues it points into -- resolving the tag
// to an actual queue is the caller's job (see scheduler.Simulation),
// avoiding an ownership cycle between the map and the queues (spec.md
// §9 Design Notes).
type RecentQueue struct {
	tags map[int]Tag
}

// Set records that pid most recently ran on queue tag.
func (r *RecentQueue) Set(pid int, tag Tag) {
	if r.tags == nil {
		r.tags = map[int]Tag{}
	}
	r.tags[pid] = tag
}

// Get returns the Tag most recently recorded for pid, or None if it has
// never left for I/O.
func (r *RecentQueue) Get(pid int) Tag {
	if r.tags == nil {
		return None
	}
	return r.tags[pid]
}
