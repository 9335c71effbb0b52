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

// Package resolver implements apis.Resolver over a strategy chain.
package resolver

import (
	"errors"
	"fmt"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/primitives"
)

var (
	// ErrInvalidReference reports a value that cannot serve as a type
	// reference.
	ErrInvalidReference = errors.New("typing(resolver): invalid type reference")

	// ErrClassRebound reports an attempt to bind a class or a name a
	// second time to a different partner.
	ErrClassRebound = errors.New("typing(resolver): class already bound")
)

// New creates an apis.Resolver resolving references through reg and par
// and classifying values through strats, tried in order. The chain is
// expected to end in a catch-all; without one TypeOf falls back to the
// Unknown primitive. bnd must be the same ledger the chain's class
// strategy binds through; a nil bnd gets a fresh one.
func New(cfg apis.Config, reg apis.Registry, par apis.Parser, ca apis.Cache, strats []apis.Strategy, bnd *Bindings) apis.Resolver {
	if bnd == nil {
		bnd = NewBindings(ca)
	}
	return &resolver{
		cfg:    cfg,
		reg:    reg,
		par:    par,
		ca:     ca,
		strats: strats,
		bnd:    bnd,
	}
}

type resolver struct {
	cfg    apis.Config
	reg    apis.Registry
	par    apis.Parser
	ca     apis.Cache
	strats []apis.Strategy

	// bnd is the class-binding ledger, shared with the class strategy so
	// discovery and explicit registration can never disagree.
	bnd *Bindings
}

// Ensure resolver implements apis.Resolver.
var _ apis.Resolver = (*resolver)(nil)

// Bindings returns the resolver's class-binding ledger.
func (r *resolver) Bindings() *Bindings {
	return r.bnd
}

// Type normalizes ref into a canonical type.
func (r *resolver) Type(ref any) (*identity.Type, error) {
	if ref == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidReference)
	}
	switch x := ref.(type) {
	case string:
		return r.par.Parse(x)
	case *identity.Type:
		if !identity.Is(x) {
			return nil, fmt.Errorf("%w: detached type", ErrInvalidReference)
		}
		return x, nil
	case apis.Typed:
		if t := x.TypeRef(); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("%w: typed value without a type", ErrInvalidReference)
	case *apis.Class:
		return r.classType(x)
	}
	if t, ok := r.ca.Restore(ref); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidReference, ref)
}

// TypeOf classifies v through the strategy chain. It never fails.
func (r *resolver) TypeOf(v any) *identity.Type {
	for _, s := range r.strats {
		if t, ok := s.TryTypeOf(v, r.cfg); ok {
			if r.cfg.CacheValues && !identity.Is(v) {
				// Advisory: values without referential identity or with a
				// type already on record are skipped by the cache itself.
				_ = r.ca.Store(v, t)
			}
			return t
		}
	}
	return primitives.Unknown
}

// Bind claims name's canonical type for class.
func (r *resolver) Bind(class *apis.Class, name string) error {
	if class == nil {
		return nil
	}
	t, err := r.par.Parse(name)
	if err != nil {
		return err
	}
	return r.bnd.Bind(class, t)
}

// classType resolves a class reference, binding on first use.
func (r *resolver) classType(c *apis.Class) (*identity.Type, error) {
	if t, ok := r.bnd.Resolve(c); ok {
		return t, nil
	}
	if c.Name == "" {
		return nil, fmt.Errorf("%w: anonymous class", ErrInvalidReference)
	}
	if err := r.Bind(c, c.Name); err != nil {
		return nil, err
	}
	t, _ := r.bnd.Resolve(c)
	return t, nil
}
