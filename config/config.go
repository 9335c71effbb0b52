/*
   Copyright 2025 The Saggitarius Authors.

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
	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/rxapi/cache"
)

const (
	// DefaultStrictBrackets represents the default for StrictBrackets.
	// When true, unbalanced generic references are rejected.
	DefaultStrictBrackets = true
	// DefaultCacheValues represents the default for CacheValues.
	// When true, resolved types are attached to identity-capable values.
	DefaultCacheValues = true
	// DefaultMaxNesting represents the default for MaxNesting.
	// A depth of 32 should be sufficient for all practical references.
	DefaultMaxNesting = 32
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxNesting is valid.
	if cfg.MaxNesting <= 0 {
		cfg.MaxNesting = DefaultMaxNesting
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictBrackets: DefaultStrictBrackets,
		CacheValues:    DefaultCacheValues,
		MaxNesting:     DefaultMaxNesting,
	}
}

// Option is a functional option that mutates an apis.Config during
// construction.
type Option func(*apis.Config)

// WithStrictBrackets sets the StrictBrackets option.
func WithStrictBrackets(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictBrackets = strict
	}
}

// WithCacheValues sets the CacheValues option.
func WithCacheValues(cache bool) Option {
	return func(c *apis.Config) {
		c.CacheValues = cache
	}
}

// WithCachePolicy sets CacheValues from a cache.Policy.
func WithCachePolicy(policy cache.Policy) Option {
	return func(c *apis.Config) {
		c.CacheValues = policy == cache.Permanent
	}
}

// WithMaxNesting sets the MaxNesting option.
// A non-positive value resets to the default.
func WithMaxNesting(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxNesting = DefaultMaxNesting
			return
		}
		c.MaxNesting = max
	}
}
