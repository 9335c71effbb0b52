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

// Typed is the zero-cost fast path: when a value exposes its own canonical
// Type, resolution uses it and stops the chain.
type Typed interface {
	// TypeRef returns the canonical Type of this value.
	TypeRef() *identity.Type
}

// Classed is implemented by instances that can report the class that
// constructed them. The resolver turns the class into its bound named
// Type.
type Classed interface {
	// ClassOf returns the class descriptor of this instance.
	ClassOf() *Class
}
