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
package workload

import (
	"context"
	"fmt"
	"io"

	"github.com/google/feedbacksim/internal/process"
	"golang.org/x/sync/errgroup"
)

// LoadBatch reads and validates several independent workload sources
// concurrently -- each source is parsed and syntax-checked on its own
// goroutine -- then concatenates the results in source order and
// rejects the whole batch if any PID is duplicated across sources. This
// mirrors the teacher's use of errgroup to fan out independent,
// order-insensitive work and join on a single error (see DESIGN.md).
func LoadBatch(ctx context.Context, sources []io.Reader) ([]*process.Process, error) {
	results := make([][]*process.Process, len(sources))

	g, _ := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			procs, err := Load(src)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			results[i] = procs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	var all []*process.Process
	for i, procs := range results {
		for _, p := range procs {
			if seen[p.PID] {
				return nil, fmt.Errorf("source %d: duplicate pid %d across batch", i, p.PID)
			}
			seen[p.PID] = true
			all = append(all, p)
		}
	}
	return all, nil
}
