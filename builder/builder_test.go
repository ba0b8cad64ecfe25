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

package builder_test

import (
	"testing"

	"dirpx.dev/kvx/builder"
	"dirpx.dev/kvx/config"
)

func TestBuildCache(t *testing.T) {
	b := builder.New()

	c := b.BuildCache(config.DefaultConfig(), nil, nil)
	if c == nil {
		t.Fatal("BuildCache returned nil")
	}
	if got := c.Size(); got != 0 {
		t.Fatalf("new cache size: got %d want 0", got)
	}

	if err := c.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, ok, err := c.Get("k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("get: got (%v,%v,%v), want (v,true,nil)", v, ok, err)
	}
}

func TestBuildCache_MigratesPrevEntries(t *testing.T) {
	b := builder.New()

	prev := b.BuildCache(config.DefaultConfig(), nil, nil)
	if err := prev.Put("user:123", "Alice Smith"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := prev.Put("config:theme", "dark"); err != nil {
		t.Fatalf("put: %v", err)
	}

	next := b.BuildCache(config.NewConfig(config.WithInitialCapacity(4)), prev, nil)
	if next == prev {
		t.Fatal("BuildCache returned the previous cache")
	}
	if got := next.Size(); got != 2 {
		t.Fatalf("migrated size: got %d want 2", got)
	}
	for key, want := range map[string]string{"user:123": "Alice Smith", "config:theme": "dark"} {
		v, ok, err := next.Get(key)
		if err != nil || !ok || v != want {
			t.Fatalf("migrated %s: got (%v,%v,%v), want (%s,true,nil)", key, v, ok, err, want)
		}
	}

	// The two caches are independent after migration.
	next.Clear()
	if got := prev.Size(); got != 2 {
		t.Fatalf("prev affected by next.Clear: size %d", got)
	}
}
