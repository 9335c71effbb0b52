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

// Cache attaches resolved types to runtime values so repeated lookups are
// identity-stable. An entry is written at most once and never overwritten
// or cleared for the cache's lifetime.
//
// Only values with referential identity (pointers, maps, channels,
// functions) can carry an entry; Store is a no-op for everything else and
// callers fall back to primitive classification.
type Cache interface {
	// Store associates t with v. Returns false when v cannot carry an
	// entry or when an entry already exists.
	Store(v any, t *identity.Type) bool

	// Restore returns the previously stored Type for v, if any.
	Restore(v any) (*identity.Type, bool)

	// Len returns the number of stored entries.
	Len() int

	// Reset drops all entries.
	Reset()
}
