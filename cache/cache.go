/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cache

import (
	"errors"
	"sync"

	logger "github.com/harwoeck/liblog/contract"

	"dirpx.dev/kvx/apis"
	"dirpx.dev/kvx/config"
	"dirpx.dev/kvx/utils/render"
)

var (
	// ErrEmptyKey is returned when an empty key is provided to Put or Get.
	ErrEmptyKey = errors.New("kvx(cache): empty key provided")
)

// New constructs a Cache sized according to cfg.
// The returned cache is safe for concurrent use by any number of goroutines.
func New(cfg apis.Config) apis.Cache {
	capacity := cfg.InitialCapacity
	if capacity <= 0 {
		capacity = config.DefaultInitialCapacity
	}
	log := cfg.Log
	if log != nil {
		log = log.Named("kvx")
	}
	return &store{
		items: make(map[string]any, capacity),
		log:   log,
	}
}

// store is a Cache backed by a single RWMutex-guarded map.
type store struct {
	// mu guards items. It is the only synchronization in the store and is
	// held for the duration of exactly one map operation per call.
	mu sync.RWMutex
	// items maps key to opaque value.
	items map[string]any
	// log is optional; nil disables diagnostics.
	log logger.Logger
}

// Put inserts or overwrites the entry for key.
// The key is validated before the guard is taken, so a failed Put never
// touches or holds the shared mapping.
func (s *store) Put(key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()

	if s.log != nil {
		s.log.Debug("put", logger.NewField("key", key))
	}
	return nil
}

// Get returns the value stored under key, with ok reporting presence.
// Absence is a normal outcome, not an error; only an empty key fails.
func (s *store) Get(key string) (any, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}

	s.mu.RLock()
	value, ok := s.items[key]
	s.mu.RUnlock()

	return value, ok, nil
}

// Clear removes all entries atomically by swapping in a fresh map.
// Snapshots taken earlier via Entries remain valid.
func (s *store) Clear() {
	s.mu.Lock()
	n := len(s.items)
	s.items = make(map[string]any)
	s.mu.Unlock()

	if s.log != nil {
		s.log.Debug("cleared", logger.NewField("evicted", n))
	}
}

// Size returns the number of entries at the instant of the call.
func (s *store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Entries returns a snapshot copy for diagnostics (order is unspecified).
func (s *store) Entries() []apis.Entry {
	s.mu.RLock()
	entries := make([]apis.Entry, 0, len(s.items))
	for k, v := range s.items {
		entries = append(entries, apis.Entry{Key: k, Value: v})
	}
	s.mu.RUnlock()
	return entries
}

// Describe renders the current contents deterministically.
// The guard is held only for the snapshot copy inside Entries; rendering
// happens outside the lock.
func (s *store) Describe() string {
	return render.Pairs(s.Entries())
}
