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

package apis

import (
	"github.com/dhindustries/saggitarius-typing/identity"
)

// Registry is the process-wide mapping from string name to canonical type.
// For a given name, at most one Type object exists for the registry's
// lifetime; the fixed primitive table takes priority over the dynamic
// table for its exact keys.
type Registry interface {
	// Named returns the canonical Type for name, creating it on first use.
	// Idempotent: repeated calls with the same name return the identical
	// object. Returns nil for an empty name.
	Named(name string) *identity.Type

	// Lookup returns the canonical Type for name without creating one.
	Lookup(name string) (*identity.Type, bool)

	// Alias binds an additional name to an existing Type. Bindings are
	// never overwritten: aliasing a taken name to a different Type fails,
	// re-aliasing to the same Type is a no-op.
	Alias(name string, t *identity.Type) error

	// Entries returns a snapshot of the dynamic table for diagnostics
	// (order is unspecified, primitives excluded).
	Entries() []Entry

	// Count returns the number of dynamic entries.
	Count() int

	// Reset clears the dynamic table. Primitives are unaffected.
	Reset()
}

// Entry is a single (name, type) association in a Registry snapshot.
type Entry struct {
	// Name is the registered name.
	Name string
	// Type is the associated canonical type.
	Type *identity.Type
}
