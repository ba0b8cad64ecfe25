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

package kvx

import (
	"errors"
	"sync"

	"dirpx.dev/kvx/apis"
	"dirpx.dev/kvx/builder"
	"dirpx.dev/kvx/config"
)

var (
	// ErrAlreadyInitialized is returned by SetConfig and SetBuilder after
	// the shared cache has been constructed.
	ErrAlreadyInitialized = errors.New("kvx: shared cache already initialized")
	// ErrNilBuilder is returned when a nil builder is provided.
	ErrNilBuilder = errors.New("kvx: nil builder provided")
	// ErrNilCache is the panic value when a builder returns a nil cache.
	ErrNilCache = errors.New("kvx: builder returned nil cache")
)

var (
	// buildMu serializes pre-initialization setters against first-time
	// construction of the shared cache.
	buildMu sync.Mutex
	// pendingCfg and pendingBld are what the first Shared call builds with.
	// They are mutable only before construction, under buildMu.
	pendingCfg apis.Config  = config.DefaultConfig()
	pendingBld apis.Builder = builder.New()

	// sharedOnce guards one-shot construction of the shared cache.
	sharedOnce sync.Once
	// shared is the process-wide cache. Written exactly once, under buildMu.
	shared apis.Cache
)

// Shared returns the process-wide shared cache, constructing it on first
// call. Every call, including concurrent first calls from any number of
// goroutines, returns the same instance; no caller can observe a partially
// constructed cache. After initialization the call is a fast un-contended
// check.
//
// Shared panics with ErrNilCache if a builder installed via SetBuilder
// returns nil; construction has no other failure path.
func Shared() apis.Cache {
	sharedOnce.Do(func() {
		buildMu.Lock()
		defer buildMu.Unlock()

		c := pendingBld.BuildCache(pendingCfg, nil, nil)
		if c == nil {
			panic(ErrNilCache)
		}
		shared = c
	})
	return shared
}

// SetConfig sets the configuration the shared cache will be built with.
// It is valid only before the first Shared call; afterwards it fails with
// ErrAlreadyInitialized and the shared cache is unchanged.
func SetConfig(cfg apis.Config) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	if shared != nil {
		return ErrAlreadyInitialized
	}
	pendingCfg = cfg
	return nil
}

// SetBuilder sets the builder the shared cache will be built with.
// It is valid only before the first Shared call; afterwards it fails with
// ErrAlreadyInitialized and the shared cache is unchanged.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return ErrNilBuilder
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	if shared != nil {
		return ErrAlreadyInitialized
	}
	pendingBld = b
	return nil
}

// Put inserts or overwrites an entry in the shared cache.
// This is a convenience wrapper around the shared cache.
func Put(key string, value any) error {
	return Shared().Put(key, value)
}

// Get returns the value stored under key in the shared cache, with ok
// reporting presence explicitly.
// This is a convenience wrapper around the shared cache.
func Get(key string) (any, bool, error) {
	return Shared().Get(key)
}

// Clear removes all entries from the shared cache.
// This is a convenience wrapper around the shared cache.
func Clear() {
	Shared().Clear()
}

// Size returns the number of entries in the shared cache.
// This is a convenience wrapper around the shared cache.
func Size() int {
	return Shared().Size()
}

// Entries returns a snapshot of the shared cache (order is unspecified).
// This is a convenience wrapper around the shared cache.
func Entries() []apis.Entry {
	return Shared().Entries()
}

// Describe renders the shared cache contents for diagnostics.
// This is a convenience wrapper around the shared cache.
func Describe() string {
	return Shared().Describe()
}
