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

// Package builder provides the default apis.Builder.
package builder

import (
	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/cache"
	"github.com/dhindustries/saggitarius-typing/config"
	"github.com/dhindustries/saggitarius-typing/interner"
	"github.com/dhindustries/saggitarius-typing/parser"
	"github.com/dhindustries/saggitarius-typing/registry"
	"github.com/dhindustries/saggitarius-typing/resolver"
	"github.com/dhindustries/saggitarius-typing/strategy"
)

// New creates the default apis.Builder.
func New() apis.Builder {
	return builder{}
}

type builder struct{}

// Ensure builder implements apis.Builder.
var _ apis.Builder = builder{}

// BuildRegistry constructs a fresh registry, carrying over the bindings
// of prev. Names that already resolve, such as primitives, keep their
// established identity.
func (builder) BuildRegistry(_ apis.Config, prev apis.Registry, _ any) apis.Registry {
	reg := registry.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = reg.Alias(e.Name, e.Type)
		}
	}
	return reg
}

// BuildInterner reuses prev when present: interned identities must
// survive reconfiguration.
func (builder) BuildInterner(_ apis.Config, prev apis.Interner, _ any) apis.Interner {
	if prev != nil {
		return prev
	}
	return interner.New()
}

// BuildCache reuses prev when present.
func (builder) BuildCache(_ apis.Config, prev apis.Cache, _ any) apis.Cache {
	if prev != nil {
		return prev
	}
	return cache.New()
}

// BuildParser constructs the reference parser.
func (builder) BuildParser(cfg apis.Config, reg apis.Registry, in apis.Interner, _ any) apis.Parser {
	return parser.New(reg, in, cfg)
}

// BuildResolver assembles the default strategy chain. When ext carries a
// config.Extension its name table is seeded into the registry first, so
// configured aliases take part in every resolution. The class-binding
// ledger is carried over from prev: bindings live as long as the cache
// that mirrors them, not one resolver generation.
func (builder) BuildResolver(cfg apis.Config, reg apis.Registry, par apis.Parser, _ apis.Interner, ca apis.Cache, prev apis.Resolver, ext any) apis.Resolver {
	seedNames(reg, par, ext)
	bnd := resolver.BindingsOf(prev)
	if bnd == nil {
		bnd = resolver.NewBindings(ca)
	}
	strats := []apis.Strategy{
		strategy.NewMetaStrategy(),
		strategy.NewCacheStrategy(ca),
		strategy.NewTypedStrategy(),
		strategy.NewClassStrategy(reg, bnd),
		strategy.NewFunctionStrategy(reg, ca),
		strategy.NewPrimitiveStrategy(),
	}
	return resolver.New(cfg, reg, par, ca, strats, bnd)
}

// seedNames registers the extension's alias table. A name that fails to
// parse or is already taken is skipped: configured aliases never break
// an established binding.
func seedNames(reg apis.Registry, par apis.Parser, ext any) {
	var names map[string]string
	switch x := ext.(type) {
	case config.Extension:
		names = x.Names
	case *config.Extension:
		if x != nil {
			names = x.Names
		}
	default:
		return
	}
	for alias, ref := range names {
		if t, err := par.Parse(ref); err == nil {
			_ = reg.Alias(alias, t)
		}
	}
}
