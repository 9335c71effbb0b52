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
	"runtime"
	"sync"
	"testing"

	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/registry"
)

// TestConcurrentNamed verifies that the lookup-or-create sequence preserves
// the one-canonical-object-per-name invariant under concurrent use.
func TestConcurrentNamed(t *testing.T) {
	reg := registry.New()

	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	workers := runtime.GOMAXPROCS(0) * 4

	results := make([][]*identity.Type, workers)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			out := make([]*identity.Type, len(names))
			for i := 0; i < 2000; i++ {
				j := (i + w) % len(names)
				got := reg.Named(names[j])
				if got == nil {
					t.Errorf("Named(%q) returned nil", names[j])
					return
				}
				if out[j] == nil {
					out[j] = got
				} else if out[j] != got {
					t.Errorf("Named(%q) returned distinct objects", names[j])
					return
				}
			}
			results[w] = out
		}(w)
	}
	wg.Wait()

	// All workers must have observed the identical object per name.
	for j := range names {
		want := results[0][j]
		for w := 1; w < workers; w++ {
			if results[w][j] != want {
				t.Fatalf("name %q: worker %d observed a different object", names[j], w)
			}
		}
	}

	if reg.Count() != len(names) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(names))
	}
}

// TestConcurrentAliasAndLookup hammers Alias/Lookup/Entries/Count together.
func TestConcurrentAliasAndLookup(t *testing.T) {
	reg := registry.New()
	target := reg.Named("Target")

	aliases := []string{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	workers := runtime.GOMAXPROCS(0) * 2

	wg := sync.WaitGroup{}
	wg.Add(workers * 2)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				name := aliases[(i+w)%len(aliases)]
				if err := reg.Alias(name, target); err != nil {
					t.Errorf("alias %q: %v", name, err)
					return
				}
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = reg.Count()
				_ = reg.Entries()
				if got, ok := reg.Lookup("Target"); ok && got != target {
					t.Error("lookup returned a different object")
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, name := range aliases {
		got, ok := reg.Lookup(name)
		if !ok || got != target {
			t.Fatalf("alias %q: got (%v,%v), want target", name, got, ok)
		}
	}
}
