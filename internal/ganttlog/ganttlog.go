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
// Package ganttlog holds the append-only record of which process ran on
// the CPU during each tick, under which algorithm.
package ganttlog

import "fmt"

// Algo names one of the four scheduling stages a Gantt segment was run
// under.
type Algo string

const (
	RR1  Algo = "RR1"
	RR2  Algo = "RR2"
	SRTF Algo = "SRTF"
	FCFS Algo = "FCFS"
)

// Segment is a single half-open CPU interval [Start, End) dedicated to
// PID under Algo.
type Segment struct {
	PID   int
	Start int
	End   int
	Algo  Algo
}

func (s Segment) String() string {
	return fmt.Sprintf("(%d, %d, %d, %s)", s.PID, s.Start, s.End, s.Algo)
}

// Length returns the number of ticks this segment covers.
func (s Segment) Length() int {
	return s.End - s.Start
}

// Log is the append-only, chronologically-ordered sequence of committed
// Gantt segments.
type Log struct {
	segments []Segment
}

// Append records a new segment in commit order.
func (l *Log) Append(s Segment) {
	l.segments = append(l.segments, s)
}

// Segments returns all committed segments, in commit order. The returned
// slice must not be mutated by the caller.
func (l *Log) Segments() []Segment {
	return l.segments
}

// TotalBusyTicks sums the length of every committed segment, which can be
// used to cross-check idle accounting (spec.md §8 property 4).
func (l *Log) TotalBusyTicks() int {
	total := 0
	for _, s := range l.segments {
		total += s.Length()
	}
	return total
}
