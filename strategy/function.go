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

package strategy

import (
	"reflect"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/utils/values"
)

// NewFunctionStrategy creates an apis.Strategy that derives a type from a
// function's own name, minting a fresh anonymous type when no name can be
// extracted.
func NewFunctionStrategy(reg apis.Registry, ca apis.Cache) apis.Strategy {
	return &functionStrategy{reg: reg, ca: ca}
}

// functionStrategy classifies function values. Named functions resolve
// through the registry; anonymous functions get a fresh type, cached so
// the same function classifies identically on every call.
type functionStrategy struct {
	reg apis.Registry
	ca  apis.Cache
}

// Ensure functionStrategy implements apis.Strategy.
var _ apis.Strategy = (*functionStrategy)(nil)

// TryTypeOf classifies function values.
func (s *functionStrategy) TryTypeOf(v any, _ apis.Config) (*identity.Type, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		// A nil function has no identity; the primitive fallback
		// classifies it as the Function primitive.
		return nil, false
	}

	var t *identity.Type
	if name, ok := values.FuncName(v); ok {
		t = s.reg.Named(name)
	} else {
		t = identity.New()
	}

	// Minted anonymous types must stay identity-stable across calls, so
	// the association is written here rather than left to the resolver.
	if !s.ca.Store(v, t) {
		if stored, ok := s.ca.Restore(v); ok {
			return stored, true
		}
	}
	return t, true
}
