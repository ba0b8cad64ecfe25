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

package config

import (
	logger "github.com/harwoeck/liblog/contract"

	"dirpx.dev/kvx/apis"
)

const (
	// DefaultInitialCapacity represents the default for InitialCapacity.
	// Large enough that small working sets never rehash.
	DefaultInitialCapacity = 16
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure InitialCapacity is valid.
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = DefaultInitialCapacity
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
// Logging is disabled by default.
func DefaultConfig() apis.Config {
	return apis.Config{
		InitialCapacity: DefaultInitialCapacity,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithInitialCapacity sets the InitialCapacity option.
// A non-positive value resets to the default.
func WithInitialCapacity(capacity int) Option {
	return func(c *apis.Config) {
		if capacity <= 0 {
			c.InitialCapacity = DefaultInitialCapacity
			return
		}
		c.InitialCapacity = capacity
	}
}

// WithLogger sets the Log option. A nil logger disables diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(c *apis.Config) {
		c.Log = log
	}
}
