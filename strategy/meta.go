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
	"github.com/dhindustries/saggitarius-typing/primitives"
)

// NewMetaStrategy creates an apis.Strategy that classifies types
// themselves: the type of every Type is the well-known "Type" meta-type.
func NewMetaStrategy() apis.Strategy {
	return metaStrategy{}
}

// metaStrategy must run first: a Type is never cached or re-classified.
type metaStrategy struct{}

// Ensure metaStrategy implements apis.Strategy.
var _ apis.Strategy = metaStrategy{}

// TryTypeOf classifies canonical types as the "Type" meta-type.
func (metaStrategy) TryTypeOf(v any, _ apis.Config) (*identity.Type, bool) {
	if identity.Is(v) {
		return primitives.Type, true
	}
	return nil, false
}
