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

package builder

import (
	"dirpx.dev/kvx/apis"
	"dirpx.dev/kvx/cache"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildCache builds and returns a new apis.Cache based on the provided
// configuration and pre-existing cache. If a pre-existing cache is provided,
// its entries are copied into the new cache.
func (b *builder) BuildCache(cfg apis.Config, prev apis.Cache, _ any) apis.Cache {
	next := cache.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = next.Put(e.Key, e.Value)
		}
	}
	return next
}
