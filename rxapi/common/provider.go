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

package common

import (
	"github.com/dhindustries/saggitarius-typing/identity"
)

// Provider exposes a value's own canonical type.
//
// # Overview
//
// Provider is the primary, zero-computation fast path for classifying
// values inside the typing resolution subsystem. When a value implements
// Provider, the resolver uses the returned type directly and skips the
// cache, class and primitive strategies entirely.
//
// Semantically, Provider is a type-level contract: TypeRef describes the
// logical kind of the value, not the particular instance. All instances
// of one logical kind SHOULD return the identical type object.
//
// # Usage
//
//	type User struct {
//	    ID string
//	}
//
//	var userType = typing.Named("domain::User")
//
//	func (User) TypeRef() *identity.Type { return userType }
//
//	t := typing.TypeOf(User{ID: "123"}) // userType, via the fast path.
//
// # Contract
//
//   - TypeRef MUST return a canonical type minted by the typing system
//     (identity.Is reports true), or nil to decline; a nil result falls
//     through to the remaining strategies.
//   - The returned object MUST be stable for the lifetime of the process:
//     returning distinct type objects for one logical kind breaks the
//     canonicalization invariant everything else relies on.
//   - TypeRef MUST be cheap and side-effect free; it is called on hot
//     resolution paths.
type Provider interface {
	// TypeRef returns the canonical type of this value, or nil to let
	// the remaining strategies classify it.
	TypeRef() *identity.Type
}

// TypeProvider provides the canonical type for all values of type T,
// without requiring an instance. It is the type-parametric counterpart of
// Provider, intended for registration helpers and generic containers that
// know T statically.
type TypeProvider[T any] interface {
	// TypeFor returns the canonical type shared by all values of T.
	TypeFor() *identity.Type
}

// ProviderFunc adapts a plain function to the Provider interface.
//
// The function SHOULD return the same canonical object on every call
// (for example, a package-level type resolved once at initialization).
type ProviderFunc func() *identity.Type

// TypeRef implements Provider by calling f.
func (f ProviderFunc) TypeRef() *identity.Type {
	return f()
}
