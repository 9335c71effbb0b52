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
	"math/big"
	"reflect"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/primitives"
)

// NewPrimitiveStrategy creates the universal fallback apis.Strategy that
// classifies values by the fixed primitive table.
func NewPrimitiveStrategy() apis.Strategy {
	return primitiveStrategy{}
}

// primitiveStrategy always handles its input: values no earlier strategy
// recognized classify by kind, degrading to Unknown rather than failing.
type primitiveStrategy struct{}

// Ensure primitiveStrategy implements apis.Strategy.
var _ apis.Strategy = primitiveStrategy{}

// TryTypeOf classifies v by the primitive table.
func (primitiveStrategy) TryTypeOf(v any, _ apis.Config) (*identity.Type, bool) {
	if v == nil {
		return primitives.Undefined, true
	}
	if _, ok := v.(*big.Int); ok {
		return primitives.BigInt, true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Bool:
		return primitives.Boolean, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return primitives.Number, true
	case reflect.String:
		return primitives.String, true
	case reflect.Slice, reflect.Array:
		// Arrays get their own classification, distinct from objects.
		return primitives.Array, true
	case reflect.Map, reflect.Struct, reflect.Pointer:
		return primitives.Object, true
	case reflect.Func:
		return primitives.Function, true
	default:
		return primitives.Unknown, true
	}
}
