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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/feedbacksim/internal/process"
)

// checkInvariants panics with a structured codes.Internal error if p
// violates one of the Process invariants spec.md §3 requires the
// scheduler core to maintain (cpu_index/io_index within bounds,
// non-negative burst cells). Per spec.md §7, these are fatal bug
// conditions -- they indicate the core itself is broken, not that the
// input was malformed, so the core asserts rather than returning an
// error a caller could plausibly recover from.
func checkInvariants(p *process.Process) {
	if p.CPUIndex < 0 || p.CPUIndex >= len(p.CPUBursts) {
		panic(status.Errorf(codes.Internal, "process %d: cpu_index %d out of range [0,%d)", p.PID, p.CPUIndex, len(p.CPUBursts)))
	}
	if p.IOIndex < 0 || p.IOIndex > len(p.IOBursts) {
		panic(status.Errorf(codes.Internal, "process %d: io_index %d out of range [0,%d]", p.PID, p.IOIndex, len(p.IOBursts)))
	}
	if p.CPUBursts[p.CPUIndex] < 0 {
		panic(status.Errorf(codes.Internal, "process %d: negative cpu burst %d", p.PID, p.CPUBursts[p.CPUIndex]))
	}
}
