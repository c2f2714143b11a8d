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
// Package workload parses the host workload file format described in
// spec.md §6: one process per non-empty, non-'#'-prefixed line,
// tab-separated fields "pid, arrival_time, b0, b1, b2, ..." where burst
// values alternate CPU, I/O, CPU, I/O, ... starting and ending with a
// CPU burst.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/feedbacksim/internal/process"
)

// Line is one parsed-but-not-yet-validated workload line: its 1-based
// source line number (for error messages) and raw tab-separated fields.
type Line struct {
	Number int
	Fields []string
}

// ReadLines scans r for workload lines, skipping blank lines and lines
// beginning with '#', per spec.md §6.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, Line{Number: lineNo, Fields: strings.Split(raw, "\t")})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return lines, nil
}

// ParseLine converts one workload Line into a Process. It enforces the
// field-count and burst-count invariants of spec.md §3 (cpu_bursts has
// length >= 1; io_bursts has length len(cpu_bursts)-1), but never
// touches scheduler state -- malformed input is the input adapter's
// concern, per spec.md §7, and never reaches the scheduler core.
func ParseLine(l Line) (*process.Process, error) {
	if len(l.Fields) < 3 {
		return nil, fmt.Errorf("line %d: expected at least pid, arrival_time, and one CPU burst, got %d fields", l.Number, len(l.Fields))
	}
	pid, err := strconv.Atoi(strings.TrimSpace(l.Fields[0]))
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid pid %q: %w", l.Number, l.Fields[0], err)
	}
	arrival, err := strconv.Atoi(strings.TrimSpace(l.Fields[1]))
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid arrival_time %q: %w", l.Number, l.Fields[1], err)
	}
	if arrival < 0 {
		return nil, fmt.Errorf("line %d: arrival_time must be non-negative, got %d", l.Number, arrival)
	}

	bursts := l.Fields[2:]
	if len(bursts)%2 == 0 {
		return nil, fmt.Errorf("line %d: burst sequence must end on a CPU burst (odd count), got %d burst fields", l.Number, len(bursts))
	}

	var cpuBursts, ioBursts []int
	for i, f := range bursts {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid burst value %q: %w", l.Number, f, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("line %d: burst values must be positive, got %d", l.Number, v)
		}
		if i%2 == 0 {
			cpuBursts = append(cpuBursts, v)
		} else {
			ioBursts = append(ioBursts, v)
		}
	}

	return process.NewProcess(pid, arrival, cpuBursts, ioBursts), nil
}

// Load reads and parses every workload line from r into Processes,
// validating each independently; see LoadBatch for a
// concurrent variant used on large batches.
func Load(r io.Reader) ([]*process.Process, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	procs := make([]*process.Process, 0, len(lines))
	seen := map[int]bool{}
	for _, l := range lines {
		p, err := ParseLine(l)
		if err != nil {
			return nil, err
		}
		if seen[p.PID] {
			return nil, fmt.Errorf("line %d: duplicate pid %d", l.Number, p.PID)
		}
		seen[p.PID] = true
		procs = append(procs, p)
	}
	return procs, nil
}
