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

// Package main provides the typingctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	typing "github.com/dhindustries/saggitarius-typing"
	"github.com/dhindustries/saggitarius-typing/config"

	_ "github.com/tliron/commonlog/simple"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// verbosity is set by the --verbose flag.
	verbosity int

	log = commonlog.GetLogger("typingctl")
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typingctl",
	Short: "typingctl inspects the runtime type identity service",
	Long: `typingctl exercises the typing resolution layers from the command
line: parse type references into their canonical form, classify literal
values, and list the well-known primitive types.`,
	PersistentPreRunE: initTyping,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: none)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(primitivesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("typingctl v0.1.0")
	},
}

// initTyping loads configuration and reconfigures the global layers.
func initTyping(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	commonlog.Configure(verbosity, nil)

	cfg, ext, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	typing.SetAll(&cfg, ext, nil, nil, nil)

	log.Debugf("configured: strict=%t cache=%t depth=%d aliases=%d",
		cfg.StrictBrackets, cfg.CacheValues, cfg.MaxNesting, len(ext.Names))
	return nil
}
