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
// Package runstore keeps a bounded, LRU-evicted set of recently
// completed simulation runs warm in memory, keyed by a minted run ID, so
// that an HTTP API can serve repeated queries against the same run
// without re-simulating. Modeled on the teacher's collection cache in
// server/storage_service.go, which bounds the number of open trace
// collections the same way.
package runstore

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/google/feedbacksim/internal/scheduler"
)

// Store is a concurrency-safe, size-bounded cache of scheduler.Results.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// New constructs a Store holding at most size runs; least-recently-used
// runs are evicted once size is exceeded.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = 25
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating run store: %w", err)
	}
	return &Store{cache: c}, nil
}

// Put stores result under runID, evicting the least-recently-used entry
// if the store is full.
func (s *Store) Put(runID string, result *scheduler.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(runID, result)
}

// Get returns the result stored under runID, and whether it was found.
func (s *Store) Get(runID string) (*scheduler.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(runID)
	if !ok {
		return nil, false
	}
	return v.(*scheduler.Result), true
}

// Len returns the number of runs currently cached.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
