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
// Package queue holds the four ready queues (Q1, Q2, Q3, Q4) and the I/O
// wait set used by the scheduler core. Q1, Q2, and Q4 are FIFO; Q3 is a
// min-priority queue keyed by remaining CPU demand, captured at
// insertion time, with ties broken by insertion order.
package queue

import "github.com/google/feedbacksim/internal/process"

// FIFO is a simple first-in-first-out queue of processes, used for Q1,
// Q2, and Q4. Insertion order is the order of Put calls.
type FIFO struct {
	items []*process.Process
}

// Put appends p to the tail of the queue.
func (f *FIFO) Put(p *process.Process) {
	f.items = append(f.items, p)
}

// Peek returns the head of the queue without removing it, and whether
// the queue was non-empty.
func (f *FIFO) Peek() (*process.Process, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	return f.items[0], true
}

// Get removes and returns the head of the queue, and whether the queue
// was non-empty.
func (f *FIFO) Get() (*process.Process, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	p := f.items[0]
	f.items = f.items[1:]
	return p, true
}

// Remove deletes the process with the given PID from anywhere in the
// queue, preserving the relative order of the remaining items. Reports
// whether a matching process was found.
func (f *FIFO) Remove(pid int) bool {
	for i, p := range f.items {
		if p.PID == pid {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Empty reports whether the queue holds no processes.
func (f *FIFO) Empty() bool {
	return len(f.items) == 0
}

// Len returns the number of processes currently queued.
func (f *FIFO) Len() int {
	return len(f.items)
}

// Items returns the queue's contents in FIFO order. The returned slice
// must not be mutated by the caller; it is intended for trace snapshots.
func (f *FIFO) Items() []*process.Process {
	return f.items
}
