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

// Package primitives seeds the fixed set of well-known base types.
//
// The set is static configuration supplied to the registry, not something
// the core computes: registries consult it before their dynamic tables, so
// these names always resolve to the canonical objects below for the
// lifetime of the process, across registry rebuilds and resets.
package primitives

import (
	"github.com/dhindustries/saggitarius-typing/identity"
)

// Canonical primitive types. One object per primitive per process.
var (
	String    = identity.New(identity.WithName("String"))
	Number    = identity.New(identity.WithName("Number"))
	BigInt    = identity.New(identity.WithName("BigInt"))
	Boolean   = identity.New(identity.WithName("Boolean"))
	Undefined = identity.New(identity.WithName("Undefined"))
	Symbol    = identity.New(identity.WithName("Symbol"))
	Array     = identity.New(identity.WithName("Array"))
	Object    = identity.New(identity.WithName("Object"))
	Function  = identity.New(identity.WithName("Function"))
	Unknown   = identity.New(identity.WithName("Unknown"))
	Type      = identity.New(identity.WithName("Type"))
	Void      = identity.New(identity.WithName("Void"))
)

// names lists the reference names in their canonical order.
var names = []string{
	"string", "number", "bigint", "boolean", "undefined", "symbol",
	"array", "object", "function", "unknown", "type", "void",
}

// table maps lookup keys to canonical types. Both the reference name and
// the display name resolve to the same object, so a canonical display
// string always parses back to the identical type.
var table = map[string]*identity.Type{
	"string":    String,
	"String":    String,
	"number":    Number,
	"Number":    Number,
	"bigint":    BigInt,
	"BigInt":    BigInt,
	"boolean":   Boolean,
	"Boolean":   Boolean,
	"undefined": Undefined,
	"Undefined": Undefined,
	"symbol":    Symbol,
	"Symbol":    Symbol,
	"array":     Array,
	"Array":     Array,
	"object":    Object,
	"Object":    Object,
	"function":  Function,
	"Function":  Function,
	"unknown":   Unknown,
	"Unknown":   Unknown,
	"type":      Type,
	"Type":      Type,
	"void":      Void,
	"Void":      Void,
}

// Lookup returns the canonical primitive type for name, if name is one of
// the fixed keys.
func Lookup(name string) (*identity.Type, bool) {
	t, ok := table[name]
	return t, ok
}

// Has reports whether name is one of the fixed primitive keys.
func Has(name string) bool {
	_, ok := table[name]
	return ok
}

// Names returns the reference names of all primitives in canonical order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
