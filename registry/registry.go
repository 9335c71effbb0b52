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

package registry

import (
	"errors"
	"sync"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/primitives"
)

var (
	// ErrNilType is returned when a nil type is provided.
	ErrNilType = errors.New("typing(registry): nil type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("typing(registry): empty name provided")
	// ErrNameTaken indicates an attempt to bind a name that already
	// resolves to a different type.
	ErrNameTaken = errors.New("typing(registry): name bound to a different type")
)

// New constructs an empty Registry. The fixed primitive table is consulted
// before the dynamic table for its exact keys.
func New() apis.Registry {
	return &registry{m: make(map[string]*identity.Type)}
}

// registry is a mutex-guarded name table with a lock-free-ish read path.
type registry struct {
	// mu guards m.
	mu sync.RWMutex
	// m maps name to canonical type.
	m map[string]*identity.Type
}

// Named returns the canonical Type for name, creating it on first use.
func (r *registry) Named(name string) *identity.Type {
	if name == "" {
		return nil
	}
	if t, ok := primitives.Lookup(name); ok {
		return t
	}

	// Fast read path.
	r.mu.RLock()
	if t, ok := r.m[name]; ok {
		r.mu.RUnlock()
		return t
	}
	r.mu.RUnlock()

	// Slow path: create under the write lock.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check in case another goroutine created meanwhile.
	if t, ok := r.m[name]; ok {
		return t
	}

	t := identity.New(identity.WithName(name))
	r.m[name] = t
	return t
}

// Lookup returns the canonical Type for name without creating one.
func (r *registry) Lookup(name string) (*identity.Type, bool) {
	if t, ok := primitives.Lookup(name); ok {
		return t, true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.m[name]
	return t, ok
}

// Alias binds an additional name to an existing Type.
// Bindings are never overwritten; re-aliasing to the same type is a no-op.
func (r *registry) Alias(name string, t *identity.Type) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	if p, ok := primitives.Lookup(name); ok {
		if identity.Compare(p, t) {
			return nil
		}
		return ErrNameTaken
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.m[name]; ok {
		if identity.Compare(old, t) {
			return nil
		}
		return ErrNameTaken
	}
	r.m[name] = t
	return nil
}

// Entries returns a snapshot of the dynamic table (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]apis.Entry, 0, len(r.m))
	for name, t := range r.m {
		entries = append(entries, apis.Entry{Name: name, Type: t})
	}
	return entries
}

// Count returns the number of dynamic entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Reset clears the dynamic table. Primitives are unaffected.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]*identity.Type)
}
