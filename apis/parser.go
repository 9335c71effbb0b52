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

import (
	"github.com/dhindustries/saggitarius-typing/identity"
)

// Parser turns a textual type reference into a canonical Type.
//
// The reference grammar is
//
//	TypeRef   := [Module "::"] Path ["<" ParamList ">"]
//	ParamList := TypeRef ("," TypeRef)*
//
// where the parameter list splits only at bracket depth zero, so nested
// generics like "Map<string, List<int>>" keep their inner commas.
type Parser interface {
	// Parse resolves ref to its canonical Type, creating named and
	// parameterized types as needed. Repeated parses of equivalent
	// references return the identical object.
	Parse(ref string) (*identity.Type, error)
}
