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

// Package identity is the kernel of the typing system: it mints canonical
// Type objects and the unforgeable tokens that define their equality.
//
// Every Type carries exactly one Token, attached at construction and never
// removed. Two Types denote the same logical type iff their tokens are the
// same allocation; there is no structural or name-based equality anywhere
// in the system. Canonicalization (one Type per name, one Type per
// parameterized combination) is the responsibility of the registry and
// interner packages, both of which rely on token identity as the key.
package identity

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Token is the identity marker carried by every Type.
//
// Tokens compare by pointer identity, never by value. The embedded UUID is
// diagnostic only (log and trace correlation); it takes no part in equality,
// so even a hypothetical UUID collision cannot merge two identities.
type Token struct {
	id uuid.UUID
}

// String returns the diagnostic form of the token.
func (k *Token) String() string {
	if k == nil {
		return ""
	}
	return k.id.String()
}

// Type is the canonical identity object for a kind of value.
//
// The zero Type carries no token and is not a valid type; Types must be
// minted through New. The display name is immutable once set. Module and
// path are plain descriptive metadata and take no part in identity.
// Base and arguments are fixed at construction for parameterized types.
type Type struct {
	token *Token

	mu     sync.Mutex
	name   string
	module string
	path   string

	base *Type
	args []*Type
}

// Option mutates a Type during construction.
type Option func(*Type)

// WithName sets the display name at construction.
func WithName(name string) Option {
	return func(t *Type) {
		t.name = name
	}
}

// WithComplex marks the Type as parameterized over base and args.
// The argument list is copied; it is immutable after construction.
func WithComplex(base *Type, args []*Type) Option {
	return func(t *Type) {
		t.base = base
		t.args = append([]*Type(nil), args...)
	}
}

// New allocates a fresh Type carrying a new, globally unique identity token.
// No two calls ever produce tokens that compare equal.
func New(opts ...Option) *Type {
	t := &Type{token: &Token{id: uuid.New()}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Is reports whether v is a Type carrying an identity token.
// A Type constructed outside New has a nil token and is rejected, so no
// externally built value can pass as a type.
func Is(v any) bool {
	t, ok := v.(*Type)
	return ok && t != nil && t.token != nil
}

// Hash returns the identity token of t, usable as a map key.
func Hash(t *Type) *Token {
	if t == nil {
		return nil
	}
	return t.token
}

// Compare reports whether l and r carry the identical token.
func Compare(l, r *Type) bool {
	if l == nil || r == nil {
		return false
	}
	return l.token != nil && l.token == r.token
}

// Name returns the display name of t, if any.
func Name(t *Type) string {
	if t == nil {
		return ""
	}
	return t.Name()
}

// Token returns the identity token of t.
func (t *Type) Token() *Token {
	return t.token
}

// Name returns the display name, or "" when none was set.
func (t *Type) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.name
}

// SetName sets the display name exactly once.
// It returns false without modification when a name is already set.
func (t *Type) SetName(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.name != "" {
		return false
	}
	t.name = name
	return true
}

// Module returns the module metadata attached by the parser, if any.
func (t *Type) Module() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.module
}

// SetModule attaches module metadata. Metadata is descriptive only.
func (t *Type) SetModule(module string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.module = module
}

// Path returns the path metadata attached by the parser, if any.
func (t *Type) Path() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}

// SetPath attaches path metadata. Metadata is descriptive only.
func (t *Type) SetPath(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.path = path
}

// IsComplex reports whether t is a parameterized type.
func (t *Type) IsComplex() bool {
	return t.base != nil
}

// Base returns the base type of a parameterized type,
// or t itself when t is not parameterized.
func (t *Type) Base() *Type {
	if t.base != nil {
		return t.base
	}
	return t
}

// Arguments returns a copy of the ordered argument types,
// or nil when t is not parameterized.
func (t *Type) Arguments() []*Type {
	if t.args == nil {
		return nil
	}
	return append([]*Type(nil), t.args...)
}

// String renders t for diagnostics: the display name when present,
// otherwise the token.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	if n := t.Name(); n != "" {
		return n
	}
	var sb strings.Builder
	sb.WriteString("type(")
	sb.WriteString(t.token.String())
	sb.WriteString(")")
	return sb.String()
}
