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

package interner_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/dhindustries/saggitarius-typing/identity"
	"github.com/dhindustries/saggitarius-typing/interner"
)

// TestConcurrentComplex verifies that exactly one parameterized type exists
// per (base, args) combination under concurrent lookup-or-create.
func TestConcurrentComplex(t *testing.T) {
	in := interner.New()
	base := identity.New(identity.WithName("List"))
	args := []*identity.Type{
		identity.New(identity.WithName("A")),
		identity.New(identity.WithName("B")),
		identity.New(identity.WithName("C")),
		identity.New(identity.WithName("D")),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	results := make([]*identity.Type, workers)

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			var got *identity.Type
			for i := 0; i < 2000; i++ {
				c := in.Complex(base, args)
				if c == nil {
					t.Error("Complex returned nil")
					return
				}
				if got == nil {
					got = c
				} else if got != c {
					t.Error("Complex returned distinct objects for one tuple")
					return
				}
				// Prefix tuples must stay independent and stable too.
				_ = in.Complex(base, args[:1+i%3])
			}
			results[w] = got
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		if results[w] != results[0] {
			t.Fatalf("worker %d observed a different interned object", w)
		}
	}

	// Full tuple plus the three proper prefixes.
	if got := in.Size(); got != 4 {
		t.Fatalf("size mismatch: got %d want 4", got)
	}
}
