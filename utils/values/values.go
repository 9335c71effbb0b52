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

// Package values provides referential-identity helpers for arbitrary
// runtime values: which values can carry a hidden type association, and
// what their stable identity key is.
package values

import (
	"reflect"
	"runtime"
	"strings"
)

// Key is the identity of a referential value: its address paired with
// its dynamic type. The type is part of the key because distinct values
// can share an address — a struct pointer and a pointer to its first
// field point at the same word.
type Key struct {
	ptr uintptr
	typ reflect.Type
}

// Identity returns a stable identity key for v.
//
// Only values with referential identity participate: pointers, maps,
// channels, functions and unsafe pointers. Everything else (numbers,
// strings, booleans, plain structs, slices) reports false; such values
// cannot carry a per-value association and are classified by the
// primitive fallback instead. Note that all closures over the same
// function body share one identity, as do a method value's instances.
func Identity(v any) (Key, bool) {
	if v == nil {
		return Key{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return Key{}, false
		}
		return Key{ptr: rv.Pointer(), typ: rv.Type()}, true
	default:
		return Key{}, false
	}
}

// Identifiable reports whether v can carry a per-value type association.
func Identifiable(v any) bool {
	_, ok := Identity(v)
	return ok
}

// FuncName extracts the declared name of a function value.
// It returns ("", false) for non-functions, nil functions, and anonymous
// functions (closures), whose runtime names are compiler-generated.
func FuncName(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "", false
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "", false
	}

	name := fn.Name() // "pkg/path.Name", "pkg/path.Type.Method-fm", "pkg/path.Outer.funcN"
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || anonymous(name) {
		return "", false
	}
	return name, true
}

// anonymous reports whether name is a compiler-generated closure name
// of the form "funcN" with a numeric suffix.
func anonymous(name string) bool {
	rest, ok := strings.CutPrefix(name, "func")
	if !ok || rest == "" {
		return false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
