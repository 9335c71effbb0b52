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
)

var parseCmd = &cobra.Command{
	Use:   "parse <reference>...",
	Short: "Parse type references into their canonical form",
	Long: `Parse one or more type references and print the canonical type each
resolves to. Equivalent spellings print the same identity token:

  typingctl parse 'List<string>' 'List<String>'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, ref := range args {
			t, err := typing.Parse(ref)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", typing.NameOf(t))
			fmt.Printf("  token: %s\n", typing.HashOf(t))
			if mod := t.Module(); mod != "" {
				fmt.Printf("  module: %s\n", mod)
			}
			if path := t.Path(); path != "" && path != typing.NameOf(t) {
				fmt.Printf("  path: %s\n", path)
			}
			if t.IsComplex() {
				fmt.Printf("  base: %s\n", typing.NameOf(typing.BaseType(t)))
				for i, arg := range typing.TypeArguments(t) {
					fmt.Printf("  arg[%d]: %s\n", i, typing.NameOf(arg))
				}
			}
		}
		return nil
	},
}
