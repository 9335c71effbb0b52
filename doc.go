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

// Package typing provides a global, process-wide runtime type identity
// service.
//
// typing answers two questions: "which canonical type does this
// reference denote?" and "what is the type of this value?". A type is
// not a string or a hash; it is an identity.Type whose token is an
// allocated cell, so two types are the same type exactly when they are
// the same object. Names, modules, and paths are metadata attached to
// an identity, never the identity itself.
//
// # Design
//
// The core of typing is a read-mostly global snapshot (state). The
// snapshot holds the resolution layers:
//
//   - Config: rules that control parsing and classification (strict
//     bracket validation, value caching, nesting depth).
//
//   - Registry: a process-wide mapping from names to canonical types.
//     Well-known primitives (String, Number, Boolean, ...) always
//     resolve ahead of user names; unknown names are created on first
//     use, so the same name always yields the same object.
//
//   - Interner: the canonical store for complex (generic) types.
//     Complex(List, [String]) returns the one List<String>, however it
//     was reached: parsed from "List<string>", composed from parts, or
//     requested again later.
//
//   - Cache: a value-to-type side table keyed by referential identity.
//     Associations are set-once; a value classified twice reports the
//     same type object.
//
//   - Parser: turns reference strings like "ns::List<Map<string, User>>"
//     into canonical types, resolving every part through the registry
//     and the interner.
//
//   - Resolver: classifies arbitrary runtime values through a strategy
//     chain (meta, cache, typed, class, function, primitive) and
//     normalizes mixed references.
//
//   - Builder: a pluggable factory that constructs the layers for a
//     given Config (and optional extension data), migrating state from
//     previous instances where identity must survive.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in, serialized by a mutex.
//
// This means typing lookups are lock-free on the hot path:
//
//	t, err := typing.Type("Map<string, number>")
//	kind := typing.TypeOf(obj)
//
// # Usage
//
// Resolve references and classify values through the package-level
// helpers:
//
//	list, _ := typing.Type("List<string>")
//	same, _ := typing.Parse("List<String>")
//	// list == same
//
//	typing.TypeOf(42)        // the Number primitive
//	typing.TypeOf(nil)       // the Undefined primitive
//
// Bind classes to names at startup:
//
//	var userClass = typing.Register("User")(&apis.Class{Name: "User"})
//
// Reconfigure by swapping layers; pinned layers survive rebuilds:
//
//	typing.SetConfig(config.NewConfig(config.WithStrictBrackets(false)))
//	typing.PinRegistry()
package typing
