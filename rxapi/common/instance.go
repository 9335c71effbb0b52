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

package common

import (
	"github.com/dhindustries/saggitarius-typing/apis"
)

// Instance is implemented by values constructed from a class descriptor.
//
// # Overview
//
// Instance combines two conceptually orthogonal pieces of information:
//
//   - The class that constructed the value (via ClassOf), from which the
//     resolver derives the value's canonical named type.
//   - An instance-level identifier (via InstanceID), distinguishing one
//     value of that class from another in logs and traces.
//
// The resolver only consumes ClassOf; InstanceID exists for callers that
// correlate specific instances across log entries or requests.
//
// # Contract
//
//   - ClassOf MUST return the same class descriptor for the lifetime of
//     the instance, or nil to decline classification (the value then
//     falls through to the primitive strategies).
//   - The returned class SHOULD carry a non-empty declared Name; unnamed
//     classes classify to a fresh anonymous type shared by all their
//     instances.
//   - InstanceID SHOULD be unique within the scope of the class, and MAY
//     be empty when the instance has no meaningful identifier.
type Instance interface {
	// ClassOf returns the class descriptor that constructed this value.
	ClassOf() *apis.Class

	// InstanceID returns a stable identifier for this particular
	// instance, or "" when none exists.
	InstanceID() string
}
