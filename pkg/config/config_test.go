/*
Copyright 2025 The AlaudaDevops Authors.

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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Version: SupportedVersion,
		Updates: []Update{{
			PackageEcosystem: EcosystemGoMod,
			Directory:        "/",
			Schedule:         Schedule{Interval: IntervalDaily},
		}},
	}

	out := cfg.String()

	// The debug representation is indented JSON that round-trips
	var decoded Config
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, SupportedVersion, decoded.Version)
	assert.Contains(t, out, `"package-ecosystem": "gomod"`)
}

func TestEntryForEcosystem(t *testing.T) {
	cfg := &Config{
		Version: SupportedVersion,
		Updates: []Update{
			{PackageEcosystem: EcosystemGoMod, Directory: "/"},
			{PackageEcosystem: EcosystemDocker, Directory: "/build"},
		},
	}

	entry := cfg.EntryForEcosystem(EcosystemDocker)
	require.NotNil(t, entry)
	assert.Equal(t, "/build", entry.Directory)

	// The returned pointer aliases the slice element, so callers can
	// modify the entry in place
	entry.Directory = "/images"
	assert.Equal(t, "/images", cfg.Updates[1].Directory)

	assert.Nil(t, cfg.EntryForEcosystem(EcosystemNpm))
}

func TestScopeDirectories(t *testing.T) {
	assert.Nil(t, (&Update{}).ScopeDirectories())
	assert.Equal(t, []string{"/"}, (&Update{Directory: "/"}).ScopeDirectories())
	assert.Equal(t, []string{"/a", "/b"}, (&Update{Directories: []string{"/a", "/b"}}).ScopeDirectories())
}
