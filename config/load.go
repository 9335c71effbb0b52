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

package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dhindustries/saggitarius-typing/apis"
)

const (
	// Config keys understood by FromViper.
	cfgKeyStrictBrackets = "strict_brackets"
	cfgKeyCacheValues    = "cache_values"
	cfgKeyMaxNesting     = "max_nesting"
	cfgKeyNames          = "names"
)

// Extension carries configuration beyond apis.Config knobs. Names maps
// an alias to the type reference it should resolve to; aliases are
// seeded into the registry when the resolution layers are built.
type Extension struct {
	Names map[string]string
}

// FromViper extracts a configuration and extension from v. Keys absent
// from v keep their defaults.
func FromViper(v *viper.Viper) (apis.Config, Extension) {
	v.SetDefault(cfgKeyStrictBrackets, DefaultStrictBrackets)
	v.SetDefault(cfgKeyCacheValues, DefaultCacheValues)
	v.SetDefault(cfgKeyMaxNesting, DefaultMaxNesting)

	cfg := NewConfig(
		WithStrictBrackets(v.GetBool(cfgKeyStrictBrackets)),
		WithCacheValues(v.GetBool(cfgKeyCacheValues)),
		WithMaxNesting(v.GetInt(cfgKeyMaxNesting)),
	)
	ext := Extension{Names: v.GetStringMapString(cfgKeyNames)}
	return cfg, ext
}

// Load reads a configuration file. A missing file is not an error; the
// defaults apply.
func Load(path string) (apis.Config, Extension, error) {
	if path == "" {
		return DefaultConfig(), Extension{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), Extension{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return DefaultConfig(), Extension{}, fmt.Errorf("read config: %w", err)
	}

	cfg, ext := FromViper(v)
	return cfg, ext, nil
}
