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
// Package testhelpers contains helpers shared across the simulator's
// test suites.
package testhelpers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/google/feedbacksim/internal/ganttlog"
)

// DiffGantt compares two Gantt segment slices element by element, in
// order, and returns a diff string and whether they are equal. Grounded on the teacher's DiffProto (testhelpers/testhelpers.go),
// adapted from proto.Message comparison to our own Segment type.
func DiffGantt(t *testing.T, got, want []ganttlog.Segment) (diff string, equal bool) {
	t.Helper()
	diff = cmp.Diff(want, got, cmpopts.EquateEmpty())
	return diff, diff == ""
}

// AssertNoDiff fails the test with diff if got and want are not equal,
// per cmp.Diff's report of differing fields.
func AssertNoDiff(t *testing.T, want, got interface{}, context string) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", context, diff)
	}
}
