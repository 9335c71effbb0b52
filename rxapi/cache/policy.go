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

package cache

import (
	"fmt"
	"strings"
)

// Policy controls whether resolved types are attached to runtime values.
//
// # Overview
//
// Policy is a small enumerated type that describes how the value-type
// cache behaves. Unlike a general-purpose cache, the value-type cache has
// no eviction: an entry, once written, is immutable and lives as long as
// the cache itself. The only meaningful choice is therefore whether the
// cache participates in resolution at all.
//
// # Values
//
//   - Permanent — entries are written on first resolution and never
//     overwritten or removed (the default).
//   - Bypass    — resolution attaches nothing; every classification
//     recomputes.
//
// # Contract
//
//   - Implementations MUST treat Policy as a stable, public API; existing
//     values MUST NOT change their semantics in breaking ways.
//   - Policy values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Under Permanent, a stored entry MUST NOT be observable as anything
//     other than the first type stored for that value.
//   - Under Bypass, the resolver MUST NOT write classification results
//     to the cache. Direct Store and Restore calls are unaffected: the
//     policy governs resolver participation, not the table itself, so
//     explicit bindings (class registration) keep working.
type Policy int

const (
	// Permanent writes each entry once and retains it for the cache's
	// lifetime. Repeated lookups for the same value MUST return the
	// identical type object.
	Permanent Policy = iota

	// Bypass keeps the resolver from attaching classification results to
	// values. Primarily useful for testing and for comparing resolution
	// behavior with and without caching.
	Bypass
)

// String returns a short, stable identifier for the Policy value,
// suitable for logging and configuration dumps. Unknown values render as
// "Unknown(<n>)" rather than panicking, so corrupted values can still be
// surfaced in diagnostics.
func (p Policy) String() string {
	switch p {
	case Permanent:
		return "Permanent"
	case Bypass:
		return "Bypass"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Parse converts a string token into the corresponding Policy value.
// It accepts the tokens produced by Policy.String for known values, with
// case-insensitive matching. Any other input results in a non-nil error.
func Parse(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permanent":
		return Permanent, nil
	case "bypass":
		return Bypass, nil
	default:
		return Permanent, fmt.Errorf("typing(cache): unknown cache policy %q", s)
	}
}
