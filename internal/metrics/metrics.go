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
// Package metrics derives aggregate statistics (C7) from a completed
// scheduler.Result: CPU utilization and mean waiting time.
package metrics

import (
	"math"

	"github.com/google/feedbacksim/internal/process"
)

// roundTo1 rounds v to one decimal place, matching the Python original's
// round(x, 1) used throughout spec.md §4.3.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CPUUtilization returns the percentage of simulated time the CPU spent
// serving some process, per spec.md §4.3:
// round(100*(current_time-free_cpu_time)/current_time, 1), or 0 when
// current_time is 0.
func CPUUtilization(currentTime, freeCPUTime int) float64 {
	if currentTime == 0 {
		return 0
	}
	working := float64(currentTime - freeCPUTime)
	return roundTo1(100 * working / float64(currentTime))
}

// AverageWaitingTime returns the mean of WaitingTime() across processes,
// per spec.md §4.3: round(sum(waiting_time(p))/N, 1).
func AverageWaitingTime(processes []*process.Process) float64 {
	if len(processes) == 0 {
		return 0
	}
	total := 0
	for _, p := range processes {
		total += p.WaitingTime()
	}
	return roundTo1(float64(total) / float64(len(processes)))
}

// PredictBursts implements the exponential-average burst-length
// predictor flagged as an open question in spec.md §9: the source
// defines pred[i] = alpha*cpu[i] + (1-alpha)*pred[i-1], but its Python
// original returns after the first iteration, so in practice only the
// first term is ever produced. This implements the intended recurrence
// across the whole original burst sequence; it is a diagnostic only and
// never influences scheduling decisions (see DESIGN.md for the
// resolution of this open question).
func PredictBursts(originalCPUBursts []int, alpha float64) []float64 {
	pred := make([]float64, len(originalCPUBursts))
	prev := 0.0
	for i, cpu := range originalCPUBursts {
		next := alpha*float64(cpu) + (1-alpha)*prev
		pred[i] = next
		prev = next
	}
	return pred
}
