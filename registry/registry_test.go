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

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/primitives"
	"github.com/dhindustries/saggitarius-typing/registry"
)

func TestNamedIsIdempotent(t *testing.T) {
	reg := registry.New()

	a := reg.Named("domain::User")
	b := reg.Named("domain::User")

	require.NotNil(t, a)
	assert.Same(t, a, b)
	assert.True(t, identity.Compare(a, b))
	assert.Equal(t, "domain::User", a.Name())
	assert.Equal(t, 1, reg.Count())
}

func TestNamedPrimitivesTakePriority(t *testing.T) {
	reg := registry.New()

	s := reg.Named("string")
	assert.Same(t, primitives.String, s)

	// Display-name key resolves to the same primitive.
	assert.Same(t, primitives.String, reg.Named("String"))

	// Primitives never enter the dynamic table.
	assert.Equal(t, 0, reg.Count())
}

func TestNamedEmptyName(t *testing.T) {
	reg := registry.New()
	assert.Nil(t, reg.Named(""))
}

func TestLookupDoesNotCreate(t *testing.T) {
	reg := registry.New()

	_, ok := reg.Lookup("Ghost")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Count())

	created := reg.Named("Ghost")
	got, ok := reg.Lookup("Ghost")
	require.True(t, ok)
	assert.Same(t, created, got)

	p, ok := reg.Lookup("number")
	require.True(t, ok)
	assert.Same(t, primitives.Number, p)
}

func TestAlias(t *testing.T) {
	reg := registry.New()
	u := reg.Named("User")
	other := reg.Named("Other")

	require.NoError(t, reg.Alias("domain::User", u))

	got, ok := reg.Lookup("domain::User")
	require.True(t, ok)
	assert.Same(t, u, got)

	// Re-aliasing to the same type is a no-op.
	require.NoError(t, reg.Alias("domain::User", u))

	// A taken name never rebinds.
	assert.ErrorIs(t, reg.Alias("domain::User", other), registry.ErrNameTaken)
	assert.ErrorIs(t, reg.Alias("User", other), registry.ErrNameTaken)

	// Primitive keys are taken unless the alias is the primitive itself.
	assert.ErrorIs(t, reg.Alias("string", other), registry.ErrNameTaken)
	assert.NoError(t, reg.Alias("string", primitives.String))
}

func TestAliasErrors(t *testing.T) {
	reg := registry.New()
	u := reg.Named("User")

	assert.ErrorIs(t, reg.Alias("x", nil), registry.ErrNilType)
	assert.ErrorIs(t, reg.Alias("", u), registry.ErrEmptyName)
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New()
	a := reg.Named("A")
	b := reg.Named("B")

	entries := reg.Entries()
	require.Len(t, entries, 2)
	byName := map[string]*identity.Type{}
	for _, e := range entries {
		byName[e.Name] = e.Type
	}
	assert.Same(t, a, byName["A"])
	assert.Same(t, b, byName["B"])

	reg.Reset()
	assert.Equal(t, 0, reg.Count())

	// A fresh canonical object after reset.
	a2 := reg.Named("A")
	assert.NotSame(t, a, a2)

	// Primitives survive resets unchanged.
	assert.Same(t, primitives.Boolean, reg.Named("boolean"))
}
