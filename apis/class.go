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

// Class is an explicit class descriptor: instead of runtime introspection
// of an object graph, each class declares its own name and base. A Class
// value stands in for the constructor; resolving it yields the canonical
// named Type it is bound to, discovered from Name on first use or fixed by
// explicit registration.
type Class struct {
	// Name is the declared class name, used for first-use discovery.
	Name string

	// Parent is the base class, if any. Only one level is ever consulted.
	Parent *Class

	// New constructs a new instance. Optional; resolution does not
	// require it.
	New func() any
}
