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

package typing

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/builder"
	"github.com/dhindustries/saggitarius-typing/config"
	"github.com/dhindustries/saggitarius-typing/identity"
)

// init initializes the global typing state.
func init() {
	st.Store(build(nil, config.DefaultConfig(), nil, builder.New(), nil, nil, false, false))
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("typing: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("typing: builder returned nil resolver")
)

// Type normalizes ref into a canonical type using the global resolver.
// ref may be a reference string, a canonical type, a typed value, a
// class, or a value with a cached type.
// This is a convenience wrapper around the global resolver.
func Type(ref any) (*identity.Type, error) {
	return st.Load().res.Type(ref)
}

// TypeOf classifies the runtime value v using the global resolver.
// It never fails; unrecognized values classify as Unknown.
// This is a convenience wrapper around the global resolver.
func TypeOf(v any) *identity.Type {
	return st.Load().res.TypeOf(v)
}

// Parse parses a type reference string using the global parser.
// This is a convenience wrapper around the global parser.
func Parse(ref string) (*identity.Type, error) {
	return st.Load().par.Parse(ref)
}

// Named returns the canonical type for name from the global registry,
// creating it on first use.
// This is a convenience wrapper around the global registry.
func Named(name string) *identity.Type {
	return st.Load().reg.Named(name)
}

// Alias binds name to t in the global registry.
// This is a convenience wrapper around the global registry.
func Alias(name string, t *identity.Type) error {
	return st.Load().reg.Alias(name, t)
}

// Complex returns the canonical instantiation of base with args. Both
// base and args may be given in any reference form Type accepts.
// This is a convenience wrapper around the global interner.
func Complex(base any, args ...any) (*identity.Type, error) {
	s := st.Load()
	bt, err := s.res.Type(base)
	if err != nil {
		return nil, err
	}
	ats := make([]*identity.Type, len(args))
	for i, arg := range args {
		at, err := s.res.Type(arg)
		if err != nil {
			return nil, err
		}
		ats[i] = at
	}
	return s.in.Complex(bt, ats), nil
}

// Store associates t with v in the global value-type cache.
// This is a convenience wrapper around the global cache.
func Store(v any, t *identity.Type) bool {
	return st.Load().ca.Store(v, t)
}

// Restore returns the type previously stored for v, if any.
// This is a convenience wrapper around the global cache.
func Restore(v any) (*identity.Type, bool) {
	return st.Load().ca.Restore(v)
}

// Bind associates class with the canonical type for name.
// This is a convenience wrapper around the global resolver.
func Bind(class *apis.Class, name string) error {
	return st.Load().res.Bind(class, name)
}

// Register returns a class annotation binding the annotated class to
// name. A nil class passes through untouched; a conflicting binding
// panics, registration is a program-shape error.
func Register(name string) func(*apis.Class) *apis.Class {
	return func(c *apis.Class) *apis.Class {
		if c == nil {
			return nil
		}
		if err := Bind(c, name); err != nil {
			panic(err)
		}
		return c
	}
}

// IsType reports whether v is a canonical type.
func IsType(v any) bool {
	return identity.Is(v)
}

// Compare reports whether l and r are the same type.
func Compare(l, r *identity.Type) bool {
	return identity.Compare(l, r)
}

// HashOf returns the identity token of t, or nil.
func HashOf(t *identity.Type) *identity.Token {
	return identity.Hash(t)
}

// NameOf returns the display name of t, or the empty string.
func NameOf(t *identity.Type) string {
	return identity.Name(t)
}

// BaseType returns the generic base of t. For non-complex types it is t
// itself; for nil it is nil.
func BaseType(t *identity.Type) *identity.Type {
	if t == nil {
		return nil
	}
	return t.Base()
}

// TypeArguments returns the type arguments of t, or nil.
func TypeArguments(t *identity.Type) []*identity.Type {
	if t == nil {
		return nil
	}
	return t.Arguments()
}

// SetAll explicitly sets all global typing state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	st.Store(build(old, ncfg, ext, nbld, reg, res, reg != nil, res != nil))
}

// Config returns the global typing configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global typing configuration to cfg.
// It rebuilds the non-pinned layers using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(build(old, cfg, old.ext, old.bld, pinnedReg(old), pinnedRes(old), old.preg, old.pres))
}

// Registry returns the global typing registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global typing registry to reg and pins it.
// The dependent layers are rebuilt over the new registry.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(build(old, old.cfg, old.ext, old.bld, reg, pinnedRes(old), true, old.pres))
}

// Interner returns the global typing interner.
func Interner() apis.Interner {
	return st.Load().in
}

// Cache returns the global typing value-type cache.
func Cache() apis.Cache {
	return st.Load().ca
}

// Parser returns the global typing parser.
func Parser() apis.Parser {
	return st.Load().par
}

// Resolver returns the global typing resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global typing resolver to res and pins it.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			in:   old.in,
			ca:   old.ca,
			par:  old.par,
			res:  res,
			bld:  old.bld,
			preg: old.preg,
			pres: true,
		},
	)
}

// Builder returns the global typing builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global typing builder to b.
// The non-pinned layers are rebuilt through the new builder.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(build(old, old.cfg, old.ext, b, pinnedReg(old), pinnedRes(old), old.preg, old.pres))
}

// SetExt replaces the extension config and rebuilds the non-pinned
// layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(build(old, old.cfg, ext, old.bld, pinnedReg(old), pinnedRes(old), old.preg, old.pres))
}

// ExtAs returns the global typing extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global registry immutable across rebuilds.
func PinRegistry() {
	setPins(true, nil)
}

// UnpinRegistry makes the global registry mutable again.
func UnpinRegistry() {
	setPins(false, nil)
}

// IsResolverPinned returns whether the global resolver is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global resolver immutable across rebuilds.
func PinResolver() {
	setPins(nil, true)
}

// UnpinResolver makes the global resolver mutable again.
func UnpinResolver() {
	setPins(nil, false)
}

// Reset discards the global state and rebuilds it from scratch. Named
// types minted before the reset stay valid but are no longer reachable
// by name; primitives keep their identity.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(build(nil, config.DefaultConfig(), nil, builder.New(), nil, nil, false, false))
}

// setPins updates the pin flags without rebuilding. Nil leaves a flag
// unchanged.
func setPins(preg, pres any) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	npreg := old.preg
	if p, ok := preg.(bool); ok {
		npreg = p
	}
	npres := old.pres
	if p, ok := pres.(bool); ok {
		npres = p
	}
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			in:   old.in,
			ca:   old.ca,
			par:  old.par,
			res:  old.res,
			bld:  old.bld,
			preg: npreg,
			pres: npres,
		},
	)
}

// pinnedReg returns the registry to carry as-is, or nil when it should
// be rebuilt.
func pinnedReg(s *state) apis.Registry {
	if s.preg {
		return s.reg
	}
	return nil
}

// pinnedRes returns the resolver to carry as-is, or nil when it should
// be rebuilt.
func pinnedRes(s *state) apis.Resolver {
	if s.pres {
		return s.res
	}
	return nil
}

// build assembles a new snapshot. A non-nil reg or res is taken as
// given; everything else is rebuilt through b, migrating stateful
// layers from old.
func build(old *state, cfg apis.Config, ext any, b apis.Builder, reg apis.Registry, res apis.Resolver, preg, pres bool) *state {
	var oreg apis.Registry
	var oin apis.Interner
	var oca apis.Cache
	var ores apis.Resolver
	if old != nil {
		oreg = old.reg
		oin = old.in
		oca = old.ca
		ores = old.res
	}

	nreg := reg
	if nreg == nil {
		nreg = b.BuildRegistry(cfg, oreg, ext)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}

	nin := b.BuildInterner(cfg, oin, ext)
	nca := b.BuildCache(cfg, oca, ext)
	npar := b.BuildParser(cfg, nreg, nin, ext)

	nres := res
	if nres == nil {
		nres = b.BuildResolver(cfg, nreg, npar, nin, nca, ores, ext)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	return &state{
		cfg:  cfg,
		ext:  ext,
		reg:  nreg,
		in:   nin,
		ca:   nca,
		par:  npar,
		res:  nres,
		bld:  b,
		preg: preg,
		pres: pres,
	}
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global typing state.
var st atomic.Pointer[state]

// state is the global typing state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global typing configuration.
	cfg apis.Config
	// ext is the global typing extension configuration.
	ext any
	// reg is the global typing registry.
	reg apis.Registry
	// in is the global typing interner.
	in apis.Interner
	// ca is the global typing value-type cache.
	ca apis.Cache
	// par is the global typing parser.
	par apis.Parser
	// res is the global typing resolver.
	res apis.Resolver
	// bld is the global typing builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned (immutable).
	preg bool
	// pres indicates whether the resolver is pinned (immutable).
	pres bool
}
