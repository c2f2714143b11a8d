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
// Package eventlog holds the chronological, human-readable log of
// scheduling transitions the core emits as it runs.
package eventlog

import "fmt"

// Log is an append-only list of formatted scheduling event lines.
type Log struct {
	lines []string
}

// Add formats "[tag tick] message" and appends it, matching the shape
// required by spec.md §6 ("[stage_tag current_time] message").
func (l *Log) Add(tag string, tick int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.lines = append(l.lines, fmt.Sprintf("[%s %d] %s", tag, tick, msg))
}

// Lines returns all recorded lines, in emission order. The returned slice
// must not be mutated by the caller.
func (l *Log) Lines() []string {
	return l.lines
}
