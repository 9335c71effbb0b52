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

package values_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhindustries/saggitarius-typing/utils/values"
)

type thing struct{ n int }

func namedFunction() int { return 42 }

func TestIdentityKinds(t *testing.T) {
	obj := &thing{}
	m := map[string]int{}
	ch := make(chan int)

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "pointer", v: obj, want: true},
		{name: "map", v: m, want: true},
		{name: "chan", v: ch, want: true},
		{name: "func", v: namedFunction, want: true},
		{name: "nil", v: nil, want: false},
		{name: "nil pointer", v: (*thing)(nil), want: false},
		{name: "int", v: 42, want: false},
		{name: "string", v: "x", want: false},
		{name: "bool", v: true, want: false},
		{name: "struct", v: thing{}, want: false},
		{name: "slice", v: []int{1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := values.Identity(tt.v)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, values.Identifiable(tt.v))
		})
	}
}

func TestIdentityIsStable(t *testing.T) {
	obj := &thing{}
	k1, ok1 := values.Identity(obj)
	k2, ok2 := values.Identity(obj)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, k1, k2)

	other := &thing{}
	k3, _ := values.Identity(other)
	assert.NotEqual(t, k1, k3)
}

func TestIdentityDistinguishesFirstFieldPointer(t *testing.T) {
	obj := &thing{}

	// &obj and &obj.n share an address; the dynamic type keeps their
	// identities apart.
	outer, ok := values.Identity(obj)
	require.True(t, ok)
	inner, ok := values.Identity(&obj.n)
	require.True(t, ok)
	assert.NotEqual(t, outer, inner)
}

func TestFuncNameNamed(t *testing.T) {
	name, ok := values.FuncName(namedFunction)
	require.True(t, ok)
	assert.Equal(t, "namedFunction", name)
}

func TestFuncNameAnonymous(t *testing.T) {
	anon := func() int { return 1 }
	_, ok := values.FuncName(anon)
	assert.False(t, ok)
}

func TestFuncNameNonFunc(t *testing.T) {
	for _, v := range []any{nil, 42, "f", &thing{}, (func())(nil)} {
		_, ok := values.FuncName(v)
		assert.False(t, ok, "%T", v)
	}
}
