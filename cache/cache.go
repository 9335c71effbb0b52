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

// Package cache attaches resolved types to runtime values.
//
// The original design hid the association on the value itself; here it is
// an out-of-band side table keyed by referential identity. The set-once
// contract is preserved explicitly: an entry is written at most once and
// never overwritten or cleared for the cache's lifetime.
package cache

import (
	"sync"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/utils/values"
)

// New constructs an empty value-type Cache.
func New() apis.Cache {
	return &cache{m: make(map[values.Key]entry)}
}

// entry is one value-type association. The value itself is retained so
// its identity key can never be recycled for a different value.
type entry struct {
	ref any
	typ *identity.Type
}

// cache is a mutex-guarded identity-keyed side table.
type cache struct {
	mu sync.RWMutex
	m  map[values.Key]entry
}

// Store associates t with v. Set-once: false when v carries no
// referential identity or an entry already exists.
func (c *cache) Store(v any, t *identity.Type) bool {
	if t == nil {
		return false
	}
	key, ok := values.Identity(v)
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.m[key]; exists {
		return false
	}
	c.m[key] = entry{ref: v, typ: t}
	return true
}

// Restore returns the previously stored Type for v, if any.
func (c *cache) Restore(v any) (*identity.Type, bool) {
	key, ok := values.Identity(v)
	if !ok {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.m[key]
	if !ok {
		return nil, false
	}
	return e.typ, true
}

// Len returns the number of stored entries.
func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Reset drops all entries.
func (c *cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[values.Key]entry)
}
