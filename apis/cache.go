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

package apis

// Cache is a concurrency-safe string-keyed store of opaque values.
// Keep it minimal so implementations can be a single guarded map.
//
// All methods must be safe for concurrent use. Writes are atomic with
// respect to every other method: once Put returns, a Get for the same key
// observes that value or a later one, never an earlier value or absence.
type Cache interface {
	// Put inserts or overwrites the entry for key.
	// An empty key fails before any shared state is touched.
	Put(key string, value any) error
	// Get returns the value stored under key. ok reports presence
	// explicitly; an empty key fails with ok=false.
	Get(key string) (value any, ok bool, err error)
	// Clear removes all entries atomically. Concurrent lookups observe
	// either the full pre-clear or the full post-clear state for the key
	// they touch. There is no per-key deletion.
	Clear()
	// Size returns the number of entries at the instant of the call.
	Size() int
	// Entries returns a point-in-time snapshot copy (order is unspecified).
	// The snapshot stays valid after later mutations of the cache.
	Entries() []Entry
	// Describe returns a deterministic, human-readable rendering of all
	// entries for diagnostics. Implementations hold their guard only long
	// enough to copy the mapping once.
	Describe() string
}

// Entry is a single (key, value) pair in a Cache snapshot.
type Entry struct {
	// Key is the entry key.
	Key string
	// Value is the stored value.
	Value any
}
