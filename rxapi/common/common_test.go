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

package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typing "github.com/dhindustries/saggitarius-typing"
	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/rxapi/common"
)

type user struct {
	id string
}

var userType = typing.Named("domain::User")

func (user) TypeRef() *identity.Type {
	return userType
}

type order struct {
	class *apis.Class
	id    string
}

func (o order) ClassOf() *apis.Class { return o.class }
func (o order) InstanceID() string   { return o.id }

func TestProviderFastPath(t *testing.T) {
	t.Cleanup(typing.Reset)

	var _ common.Provider = user{}

	u := user{id: "123"}
	assert.Same(t, userType, typing.TypeOf(u))

	got, err := typing.Type(u)
	require.NoError(t, err)
	assert.Same(t, userType, got)
}

func TestProviderFunc(t *testing.T) {
	t.Cleanup(typing.Reset)

	widget := typing.Named("Widget")
	p := common.ProviderFunc(func() *identity.Type { return widget })
	assert.Same(t, widget, typing.TypeOf(p))

	// A declining provider falls through to the primitive strategies.
	decline := common.ProviderFunc(func() *identity.Type { return nil })
	assert.NotSame(t, widget, typing.TypeOf(decline))
}

func TestInstanceResolvesThroughClass(t *testing.T) {
	t.Cleanup(typing.Reset)

	class := typing.Register("domain::Order")(&apis.Class{Name: "domain::Order"})

	var _ common.Instance = order{}

	a := order{class: class, id: "a"}
	b := order{class: class, id: "b"}

	canonical, err := typing.Type("domain::Order")
	require.NoError(t, err)

	at := typing.TypeOf(a)
	assert.Same(t, canonical, at)
	assert.Same(t, at, typing.TypeOf(b), "instances of one class share a type")
	assert.NotEqual(t, a.InstanceID(), b.InstanceID())
}
