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

package resolver

import (
	"fmt"
	"sync"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/identity"
)

// NewBindings constructs the class-binding ledger over ca.
func NewBindings(ca apis.Cache) *Bindings {
	return &Bindings{
		ca:     ca,
		owners: make(map[*identity.Token]*apis.Class),
	}
}

// Bindings is the single ledger of class-to-type associations. Both
// explicit registration and first-use discovery go through it, so a type
// claimed either way is claimed for good: owners tracks which class holds
// each bound type, and the value-type cache stores the type on the class.
// Both sides are set-once.
type Bindings struct {
	ca apis.Cache

	mu     sync.Mutex
	owners map[*identity.Token]*apis.Class
}

// Bind associates class with t. Re-binding the same pair is a no-op;
// binding the class or the type a second time to a different partner
// fails. A failed bind leaves the ledger untouched.
func (b *Bindings) Bind(class *apis.Class, t *identity.Type) error {
	if prev, ok := b.ca.Restore(class); ok {
		// The class already carries a type; it never moves.
		if prev != t {
			return fmt.Errorf("%w: %s resolves elsewhere", ErrClassRebound, t)
		}
		if !b.claim(t, class) {
			return fmt.Errorf("%w: %s", ErrClassRebound, t)
		}
		return nil
	}

	if !b.claim(t, class) {
		return fmt.Errorf("%w: %s", ErrClassRebound, t)
	}
	if !b.ca.Store(class, t) {
		// Lost a race to a concurrent bind of the same class; back out
		// unless it agreed with us.
		if prev, ok := b.ca.Restore(class); !ok || prev != t {
			b.release(t, class)
			return fmt.Errorf("%w: %s resolves elsewhere", ErrClassRebound, t)
		}
	}
	return nil
}

// Resolve returns the type bound to class, if any.
func (b *Bindings) Resolve(class *apis.Class) (*identity.Type, bool) {
	return b.ca.Restore(class)
}

// BindingsOf returns the class-binding ledger of a resolver built by
// this package, or nil. Builders use it to carry the ledger across
// rebuilds alongside the cache it mirrors.
func BindingsOf(res apis.Resolver) *Bindings {
	if r, ok := res.(interface{ Bindings() *Bindings }); ok {
		return r.Bindings()
	}
	return nil
}

// claim records class as the owner of t. It reports whether the claim
// holds: true when t was unowned or already owned by class.
func (b *Bindings) claim(t *identity.Type, class *apis.Class) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	owner, ok := b.owners[t.Token()]
	if ok {
		return owner == class
	}
	b.owners[t.Token()] = class
	return true
}

// release drops class's claim on t, if it holds one.
func (b *Bindings) release(t *identity.Type, class *apis.Class) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.owners[t.Token()] == class {
		delete(b.owners, t.Token())
	}
}
