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

// Strategy is a pluggable classification step. A Resolver chains multiple
// strategies in order (e.g., Meta -> Cache -> Typed -> Class -> Function
// -> Primitive).
type Strategy interface {
	// TryTypeOf attempts to classify v according to cfg.
	// It returns (type, true) if handled; otherwise (nil, false) to fall
	// through to the next strategy.
	TryTypeOf(v any, cfg Config) (*identity.Type, bool)
}
