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

// Interner deduplicates parameterized types: exactly one Type object
// exists for any ordered (base, args) combination, compared by identity
// token at each position, regardless of how many times or in what order
// it is requested.
type Interner interface {
	// Complex returns the canonical parameterized Type for base and the
	// ordered argument list, creating and memoizing it on first request.
	// An empty argument list returns base unchanged. Returns nil for a
	// nil base.
	Complex(base *identity.Type, args []*identity.Type) *identity.Type

	// Size returns the number of interned parameterized types.
	Size() int

	// Reset drops all interned types.
	Reset()
}
