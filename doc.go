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

// Package kvx provides a global, process-wide shared key-value cache.
//
// kvx is responsible for holding small, hot, in-process data (resolved
// user records, configuration snapshots, rendered request summaries)
// behind a single accessor that every component in the process can reach.
// There is exactly one shared store per process; all callers observe the
// same mapping for the lifetime of the process.
//
// # Design
//
// The core of kvx is a lazily-initialized singleton store. The package
// holds the store behind a one-shot initialization guard:
//
//   - Shared() returns the process-wide store, constructing it on first
//     call. Any number of goroutines may race on the first call; the
//     constructor runs at most once and every caller receives the same,
//     fully constructed instance.
//
//   - The store itself is a plain map[string]any protected by a single
//     read-write mutex. Put/Clear take the write lock, Get/Size/Entries/
//     Describe take the read lock, and every hold is O(1) relative to a
//     single map operation (Entries and Describe copy the mapping once
//     and release the lock before doing anything else).
//
//   - Construction is delegated to a pluggable apis.Builder, so binaries
//     can substitute their own store implementation before first use.
//
// Keys are non-empty strings; values are opaque. An empty key is rejected
// with cache.ErrEmptyKey before any shared state is touched. Absence is
// reported explicitly (ok=false), never as a sentinel value: an empty
// string stored under a key is a real value and round-trips as one.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Accessor:
//
//     Shared() apis.Cache
//
//     Safe for concurrent use. Blocks only while another goroutine is
//     performing first-time initialization; afterwards it is a fast
//     un-contended check.
//
//  2. Convenience wrappers over the shared store:
//
//     Put(key string, value any) error
//     Get(key string) (any, bool, error)
//     Clear()
//     Size() int
//     Entries() []apis.Entry
//     Describe() string
//
//     Each wrapper is a single call on the shared instance and carries
//     that operation's guarantees: writes are atomic with respect to all
//     other operations, and a Get that starts after a Put for the same
//     key has returned observes that value or a later one.
//
//  3. Pre-initialization setters:
//
//     SetConfig(cfg apis.Config) error
//     SetBuilder(b apis.Builder) error
//
//     These adjust how the shared store will be constructed. Because the
//     shared mapping must be the same object for the whole process
//     lifetime, they are only valid before the first Shared() call;
//     afterwards they fail with ErrAlreadyInitialized.
//
// # Concurrency model
//
// Initialization is a one-shot guard: the first caller constructs the
// store, concurrent first callers block until construction completes, and
// no caller can observe a partially constructed store. After that, Shared
// never pays the initialization cost again.
//
// All per-operation synchronization lives inside the store: one exclusive
// guard over the whole mapping, acquired for the duration of a single map
// operation and released unconditionally on every exit path. Validation
// errors are raised before the guard is taken. Concurrent Puts to
// different keys may be applied in either order, but each is atomic, and
// a Clear is observed by every concurrent lookup as either the full
// pre-clear state or the full post-clear state for the key it touches.
//
// # Non-shared stores
//
// The shared instance is ordinary: cache.New constructs standalone stores
// with the same contract, and builder.New provides the default
// apis.Builder, which can migrate entries out of a previous store when a
// binary builds a replacement for local use.
package kvx
