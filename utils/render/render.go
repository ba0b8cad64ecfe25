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

package render

import (
	"fmt"
	"sort"
	"strings"

	"dirpx.dev/kvx/apis"
)

// Pairs renders an entry snapshot as a human-readable block:
//
//	Cache Contents:
//	  Key: config:theme, Value: dark
//	  Key: user:123, Value: Alice Smith
//
// Entries are sorted by key so the output is deterministic regardless of
// snapshot order. An empty snapshot renders as "  (empty)". The input
// slice is not modified.
func Pairs(entries []apis.Entry) string {
	var b strings.Builder
	b.WriteString("Cache Contents:")

	if len(entries) == 0 {
		b.WriteString("\n  (empty)")
		return b.String()
	}

	sorted := make([]apis.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	for _, e := range sorted {
		fmt.Fprintf(&b, "\n  Key: %s, Value: %v", e.Key, e.Value)
	}
	return b.String()
}
