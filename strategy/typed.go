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
)

// NewTypedStrategy creates an apis.Strategy that uses apis.Typed.
func NewTypedStrategy() apis.Strategy {
	return typedStrategy{}
}

// typedStrategy is a zero-cost fast path: if v implements apis.Typed,
// return its own canonical type and stop the chain.
type typedStrategy struct{}

// Ensure typedStrategy implements apis.Strategy.
var _ apis.Strategy = typedStrategy{}

// TryTypeOf checks whether v reports its own type.
func (typedStrategy) TryTypeOf(v any, _ apis.Config) (*identity.Type, bool) {
	if v == nil {
		return nil, false
	}
	if tv, ok := v.(apis.Typed); ok {
		if t := tv.TypeRef(); t != nil {
			return t, true
		}
	}
	return nil, false
}
