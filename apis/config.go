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

import (
	logger "github.com/harwoeck/liblog/contract"
)

// Config carries read-only construction knobs for a Cache.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// InitialCapacity is the capacity hint for the underlying mapping.
	// Values <= 0 fall back to the package default.
	InitialCapacity int

	// Log receives Debug-level diagnostics from the store (puts, clears).
	// A nil logger disables logging entirely. Implementations must never
	// route errors through the logger instead of returning them.
	Log logger.Logger
}
