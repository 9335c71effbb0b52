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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	typing "github.com/dhindustries/saggitarius-typing"
	"github.com/dhindustries/saggitarius-typing/primitives"
)

var primitivesCmd = &cobra.Command{
	Use:   "primitives",
	Short: "List the well-known primitive types",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range primitives.Names() {
			t, _ := primitives.Lookup(name)
			fmt.Printf("%-10s %s\n", name, typing.HashOf(t))
		}
		return nil
	},
}
