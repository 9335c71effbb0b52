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

// Builder composes the resolution layers from a Config.
// Implementations may migrate state from previous instances (prev), or
// ignore them. ext is an optional extension context; its meaning is
// implementation-defined.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate entries
	// from a previous registry.
	BuildRegistry(cfg Config, prev Registry, ext any) Registry

	// BuildInterner constructs an Interner. Implementations should reuse
	// a previous interner where possible: interned identities must
	// survive reconfiguration.
	BuildInterner(cfg Config, prev Interner, ext any) Interner

	// BuildCache constructs a value-type Cache, reusing a previous cache
	// where possible.
	BuildCache(cfg Config, prev Cache, ext any) Cache

	// BuildParser constructs a Parser over the given registry and
	// interner.
	BuildParser(cfg Config, reg Registry, in Interner, ext any) Parser

	// BuildResolver constructs a Resolver over the given layers. May
	// reuse state from a previous resolver.
	BuildResolver(cfg Config, reg Registry, par Parser, in Interner, ca Cache, prev Resolver, ext any) Resolver
}
