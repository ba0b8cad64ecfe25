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

package cache_test

import (
	"testing"

	"github.com/harwoeck/liblog/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/kvx/cache"
	"dirpx.dev/kvx/config"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := cache.New(config.DefaultConfig())

	require.NoError(t, c.Put("user:123", "Alice Smith"))

	v, ok, err := c.Get("user:123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alice Smith", v)
}

func TestOverwrite(t *testing.T) {
	c := cache.New(config.DefaultConfig())

	require.NoError(t, c.Put("config:theme", "light"))
	require.NoError(t, c.Put("config:theme", "dark"))

	v, ok, err := c.Get("config:theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, 1, c.Size())
}

func TestAbsenceIsExplicit(t *testing.T) {
	c := cache.New(config.DefaultConfig())

	v, ok, err := c.Get("never-written")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	// An empty string is a real value and must round-trip as one,
	// distinguishable from absence.
	require.NoError(t, c.Put("blank", ""))
	v, ok, err = c.Get("blank")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestEmptyKeyRejected(t *testing.T) {
	c := cache.New(config.DefaultConfig())
	require.NoError(t, c.Put("present", 1))

	err := c.Put("", "value")
	require.ErrorIs(t, err, cache.ErrEmptyKey)

	_, _, err = c.Get("")
	require.ErrorIs(t, err, cache.ErrEmptyKey)

	// The failed Put must leave the mapping unchanged.
	assert.Equal(t, 1, c.Size())
	v, ok, err := c.Get("present")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestClear(t *testing.T) {
	c := cache.New(config.DefaultConfig())

	// Clearing an empty cache is a no-op.
	c.Clear()
	assert.Equal(t, 0, c.Size())

	keys := []string{"a", "b", "c", "d"}
	for i, k := range keys {
		require.NoError(t, c.Put(k, i))
	}
	require.Equal(t, len(keys), c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
	for _, k := range keys {
		_, ok, err := c.Get(k)
		require.NoError(t, err)
		assert.False(t, ok, "key %q should be absent after Clear", k)
	}
}

func TestEntriesSnapshot(t *testing.T) {
	c := cache.New(config.DefaultConfig())
	require.NoError(t, c.Put("user:123", "Alice Smith"))
	require.NoError(t, c.Put("config:theme", "dark"))

	snap := c.Entries()
	require.Len(t, snap, 2)

	// The snapshot must stay valid after later mutations.
	c.Clear()
	require.Equal(t, 0, c.Size())
	require.Len(t, snap, 2)

	got := map[string]any{}
	for _, e := range snap {
		got[e.Key] = e.Value
	}
	assert.Equal(t, map[string]any{
		"user:123":     "Alice Smith",
		"config:theme": "dark",
	}, got)
}

func TestDescribe(t *testing.T) {
	c := cache.New(config.DefaultConfig())
	assert.Equal(t, "Cache Contents:\n  (empty)", c.Describe())

	require.NoError(t, c.Put("user:123", "Alice Smith"))
	require.NoError(t, c.Put("config:theme", "dark"))

	// Compare the rendered pairs as a set; only the header/format of the
	// individual lines is fixed, not a particular entry order.
	out := c.Describe()
	assert.Contains(t, out, "Cache Contents:")
	assert.Contains(t, out, "  Key: user:123, Value: Alice Smith")
	assert.Contains(t, out, "  Key: config:theme, Value: dark")
}

func TestWithLogger(t *testing.T) {
	// Behavior must be identical with diagnostics enabled.
	c := cache.New(config.NewConfig(
		config.WithInitialCapacity(4),
		config.WithLogger(contract.MustNewStd()),
	))

	require.NoError(t, c.Put("k", "v"))
	v, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestOpaqueValues(t *testing.T) {
	type payload struct {
		ID   int
		Name string
	}

	c := cache.New(config.DefaultConfig())
	require.NoError(t, c.Put("struct", payload{ID: 7, Name: "x"}))
	require.NoError(t, c.Put("ptr", &payload{ID: 8}))
	require.NoError(t, c.Put("nil", nil))

	v, ok, err := c.Get("struct")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload{ID: 7, Name: "x"}, v)

	// A stored nil is present, distinct from an absent key.
	v, ok, err = c.Get("nil")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Nil(t, v)
}
