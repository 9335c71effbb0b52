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

package apis

// Config carries read-only resolution knobs that influence the parser and
// resolver. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// StrictBrackets rejects type references whose angle brackets do not
	// balance. When false, the parser splits best-effort and treats a
	// reference without a well-formed "<...>" suffix as a bare path.
	StrictBrackets bool

	// CacheValues controls whether resolved types are attached to
	// identity-capable values (pointers, maps, channels, functions) so
	// repeated lookups return the identical object without recomputation.
	CacheValues bool

	// MaxNesting limits generic nesting depth accepted by the parser.
	// Acts as a safety guard against pathological references.
	MaxNesting int
}
