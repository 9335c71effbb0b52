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

package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/cache"
	"github.com/dhindustries/saggitarius-typing/config"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/primitives"
	"github.com/dhindustries/saggitarius-typing/registry"
	"github.com/dhindustries/saggitarius-typing/resolver"
	"github.com/dhindustries/saggitarius-typing/strategy"
)

type selfTyped struct {
	t *identity.Type
}

func (s selfTyped) TypeRef() *identity.Type {
	return s.t
}

type classed struct {
	c *apis.Class
}

func (i classed) ClassOf() *apis.Class {
	return i.c
}

func TestMetaStrategy(t *testing.T) {
	s := strategy.NewMetaStrategy()
	cfg := config.DefaultConfig()

	got, ok := s.TryTypeOf(primitives.Number, cfg)
	require.True(t, ok)
	assert.Same(t, primitives.Type, got)

	// Even the meta-type itself is a Type.
	got, ok = s.TryTypeOf(primitives.Type, cfg)
	require.True(t, ok)
	assert.Same(t, primitives.Type, got)

	_, ok = s.TryTypeOf(42, cfg)
	assert.False(t, ok)
	_, ok = s.TryTypeOf(nil, cfg)
	assert.False(t, ok)
}

func TestCacheStrategy(t *testing.T) {
	ca := cache.New()
	s := strategy.NewCacheStrategy(ca)
	cfg := config.DefaultConfig()

	v := &struct{ X int }{}
	_, ok := s.TryTypeOf(v, cfg)
	assert.False(t, ok, "uncached value must fall through")

	typ := identity.New(identity.WithName("Widget"))
	require.True(t, ca.Store(v, typ))

	got, ok := s.TryTypeOf(v, cfg)
	require.True(t, ok)
	assert.Same(t, typ, got)
}

func TestTypedStrategy(t *testing.T) {
	s := strategy.NewTypedStrategy()
	cfg := config.DefaultConfig()

	typ := identity.New(identity.WithName("Widget"))
	got, ok := s.TryTypeOf(selfTyped{t: typ}, cfg)
	require.True(t, ok)
	assert.Same(t, typ, got)

	// A nil self-report is no report at all.
	_, ok = s.TryTypeOf(selfTyped{}, cfg)
	assert.False(t, ok)

	_, ok = s.TryTypeOf("plain", cfg)
	assert.False(t, ok)
}

func TestClassStrategy(t *testing.T) {
	reg := registry.New()
	bnd := resolver.NewBindings(cache.New())
	s := strategy.NewClassStrategy(reg, bnd)
	cfg := config.DefaultConfig()

	c := &apis.Class{Name: "User"}

	got, ok := s.TryTypeOf(c, cfg)
	require.True(t, ok)
	assert.Same(t, reg.Named("User"), got)

	// Instances resolve to the same type as their class.
	inst, ok := s.TryTypeOf(classed{c: c}, cfg)
	require.True(t, ok)
	assert.Same(t, got, inst)

	// Anonymous classes mint one stable type per class.
	anon := &apis.Class{}
	first, ok := s.TryTypeOf(anon, cfg)
	require.True(t, ok)
	second, ok := s.TryTypeOf(anon, cfg)
	require.True(t, ok)
	assert.Same(t, first, second)
	assert.NotSame(t, got, first)

	_, ok = s.TryTypeOf(42, cfg)
	assert.False(t, ok)
	_, ok = s.TryTypeOf(classed{}, cfg)
	assert.False(t, ok)
}

func namedProbe() {}

func TestFunctionStrategy(t *testing.T) {
	reg := registry.New()
	ca := cache.New()
	s := strategy.NewFunctionStrategy(reg, ca)
	cfg := config.DefaultConfig()

	got, ok := s.TryTypeOf(namedProbe, cfg)
	require.True(t, ok)
	assert.Same(t, reg.Named("namedProbe"), got)

	// Anonymous functions mint a stable type per function value.
	fn := func() {}
	first, ok := s.TryTypeOf(fn, cfg)
	require.True(t, ok)
	second, ok := s.TryTypeOf(fn, cfg)
	require.True(t, ok)
	assert.Same(t, first, second)

	// Nil and non-function values fall through.
	_, ok = s.TryTypeOf((func())(nil), cfg)
	assert.False(t, ok)
	_, ok = s.TryTypeOf("fn", cfg)
	assert.False(t, ok)
	_, ok = s.TryTypeOf(nil, cfg)
	assert.False(t, ok)
}
