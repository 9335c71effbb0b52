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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhindustries/saggitarius-typing/config"
	"github.com/dhindustries/saggitarius-typing/rxapi/cache"
)

func TestDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.True(t, cfg.StrictBrackets)
	assert.True(t, cfg.CacheValues)
	assert.Equal(t, config.DefaultMaxNesting, cfg.MaxNesting)

	assert.Equal(t, cfg, config.NewConfig())
}

func TestOptions(t *testing.T) {
	cfg := config.NewConfig(
		config.WithStrictBrackets(false),
		config.WithCacheValues(false),
		config.WithMaxNesting(8),
	)
	assert.False(t, cfg.StrictBrackets)
	assert.False(t, cfg.CacheValues)
	assert.Equal(t, 8, cfg.MaxNesting)

	// Non-positive depth falls back to the default.
	cfg = config.NewConfig(config.WithMaxNesting(-1))
	assert.Equal(t, config.DefaultMaxNesting, cfg.MaxNesting)
}

func TestCachePolicyOption(t *testing.T) {
	cfg := config.NewConfig(config.WithCachePolicy(cache.Bypass))
	assert.False(t, cfg.CacheValues)

	cfg = config.NewConfig(config.WithCachePolicy(cache.Permanent))
	assert.True(t, cfg.CacheValues)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typing.yaml")
	data := []byte("strict_brackets: false\nmax_nesting: 4\nnames:\n  Text: string\n  Users: List<User>\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, ext, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.StrictBrackets)
	assert.True(t, cfg.CacheValues, "absent keys keep their defaults")
	assert.Equal(t, 4, cfg.MaxNesting)
	assert.Equal(t, map[string]string{"text": "string", "users": "List<User>"}, ext.Names)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, ext, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.Empty(t, ext.Names)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, _, err := config.Load(path)
	assert.Error(t, err)
}
