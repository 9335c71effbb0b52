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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	typing "github.com/dhindustries/saggitarius-typing"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <literal>...",
	Short: "Classify JSON literals",
	Long: `Classify one or more JSON literals and print the primitive type each
value resolves to:

  typingctl classify 42 '"hello"' '[1,2]' '{"a":1}' null`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, lit := range args {
			var v any
			if err := json.Unmarshal([]byte(lit), &v); err != nil {
				return fmt.Errorf("parse literal %q: %w", lit, err)
			}
			fmt.Printf("%s: %s\n", lit, typing.NameOf(typing.TypeOf(v)))
		}
		return nil
	},
}
