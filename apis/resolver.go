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

// Resolver normalizes type references and classifies runtime values.
// Typical TypeOf chain: Meta -> Cache -> Typed -> Class -> Function -> Primitive.
type Resolver interface {
	// Type normalizes ref into a canonical Type: strings go through the
	// parser, Types pass through, Typed values report their own type,
	// classes resolve via their binding, and values carrying a cached
	// type pass through. Anything else fails with an invalid-reference
	// error.
	Type(ref any) (*identity.Type, error)

	// TypeOf classifies an arbitrary runtime value. It never fails;
	// unrecognized values classify as the Unknown primitive.
	TypeOf(v any) *identity.Type

	// Bind associates class with the canonical Type for name, storing the
	// association on the class. Re-binding the same class to the same
	// type is a no-op; binding a class or a name a second time to a
	// different partner fails. A nil class is silently ignored.
	Bind(class *Class, name string) error
}
