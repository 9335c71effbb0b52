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

package interner

import (
	"strings"
	"sync"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
)

// New constructs an empty Interner.
func New() apis.Interner {
	return &interner{roots: make(map[*identity.Token]*node)}
}

// node is one level of the interning tree. A node can simultaneously
// terminate one argument list (typ) and continue longer ones (children),
// so a shorter list sharing a prefix with a longer one never displaces it.
type node struct {
	// typ is the interned type whose argument path ends at this node.
	typ *identity.Type
	// children continues longer argument paths, keyed by the next
	// argument's identity token.
	children map[*identity.Token]*node
}

// child returns the continuation node for tok, creating it if needed.
func (n *node) child(tok *identity.Token) *node {
	if n.children == nil {
		n.children = make(map[*identity.Token]*node)
	}
	c, ok := n.children[tok]
	if !ok {
		c = &node{}
		n.children[tok] = c
	}
	return c
}

// interner memoizes parameterized types in a tree keyed by identity
// tokens: the path is [baseToken, arg1Token, ..., argNToken].
type interner struct {
	// mu guards the whole tree; lookup-or-create must be atomic.
	mu sync.Mutex
	// roots holds one subtree per base type.
	roots map[*identity.Token]*node
	// size counts interned types.
	size int
}

// Complex returns the canonical parameterized Type for (base, args).
func (i *interner) Complex(base *identity.Type, args []*identity.Type) *identity.Type {
	if base == nil {
		return nil
	}
	if len(args) == 0 {
		return base
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	n, ok := i.roots[base.Token()]
	if !ok {
		n = &node{}
		i.roots[base.Token()] = n
	}
	for _, a := range args {
		if a == nil {
			return nil
		}
		n = n.child(a.Token())
	}

	if n.typ == nil {
		n.typ = identity.New(
			identity.WithName(displayName(base, args)),
			identity.WithComplex(base, args),
		)
		i.size++
	}
	return n.typ
}

// Size returns the number of interned parameterized types.
func (i *interner) Size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.size
}

// Reset drops all interned types.
func (i *interner) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.roots = make(map[*identity.Token]*node)
	i.size = 0
}

// displayName renders the canonical "Base<A1, A2>" form from the
// components' display names.
func displayName(base *identity.Type, args []*identity.Type) string {
	var sb strings.Builder
	sb.WriteString(base.Name())
	sb.WriteString("<")
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Name())
	}
	sb.WriteString(">")
	return sb.String()
}
