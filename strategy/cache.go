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

// NewCacheStrategy creates an apis.Strategy that consults a value-type
// Cache, short-circuiting repeated classification of the same value.
func NewCacheStrategy(ca apis.Cache) apis.Strategy {
	return &cacheStrategy{ca: ca}
}

// cacheStrategy is the O(1) fast path for previously resolved values.
type cacheStrategy struct {
	ca apis.Cache
}

// Ensure cacheStrategy implements apis.Strategy.
var _ apis.Strategy = (*cacheStrategy)(nil)

// TryTypeOf returns the previously stored type of v, if any.
func (s *cacheStrategy) TryTypeOf(v any, _ apis.Config) (*identity.Type, bool) {
	if v == nil || s.ca == nil {
		return nil, false
	}
	return s.ca.Restore(v)
}
