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
	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/resolver"
)

// NewClassStrategy creates an apis.Strategy that resolves class
// descriptors and their instances to the class's bound named type.
func NewClassStrategy(reg apis.Registry, bnd *resolver.Bindings) apis.Strategy {
	return &classStrategy{reg: reg, bnd: bnd}
}

// classStrategy handles both a class value itself (the constructor case)
// and values reporting their class via apis.Classed. A class is bound to
// its type on first use, discovered from its declared name. Discovery
// goes through the same binding ledger as explicit registration, so a
// name claimed either way stays claimed.
type classStrategy struct {
	reg apis.Registry
	bnd *resolver.Bindings
}

// Ensure classStrategy implements apis.Strategy.
var _ apis.Strategy = (*classStrategy)(nil)

// TryTypeOf resolves classes and class instances.
func (s *classStrategy) TryTypeOf(v any, _ apis.Config) (*identity.Type, bool) {
	switch x := v.(type) {
	case *apis.Class:
		return s.classType(x)
	case apis.Classed:
		if c := x.ClassOf(); c != nil {
			return s.classType(c)
		}
	}
	return nil, false
}

// classType returns the named type bound to c, binding on first use.
func (s *classStrategy) classType(c *apis.Class) (*identity.Type, bool) {
	if c == nil {
		return nil, false
	}
	if t, ok := s.bnd.Resolve(c); ok {
		return t, true
	}

	var t *identity.Type
	if c.Name != "" {
		t = s.reg.Named(c.Name)
	} else {
		// Anonymous class: a fresh type shared by all its instances.
		t = identity.New()
	}

	// Classification still answers when the bind is refused: a
	// concurrent binding of the same class wins, and a type owned by
	// another class is reported without claiming it.
	if err := s.bnd.Bind(c, t); err != nil {
		if stored, ok := s.bnd.Resolve(c); ok {
			return stored, true
		}
	}
	return t, true
}
