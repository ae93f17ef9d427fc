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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	loader := NewLoader()

	cfg, err := loader.LoadFile(filepath.Join("testdata", "valid.yml"))
	require.NoError(t, err)

	assert.Equal(t, SupportedVersion, cfg.Version)
	require.Len(t, cfg.Updates, 3)

	assert.Equal(t, EcosystemPip, cfg.Updates[0].PackageEcosystem)
	assert.Equal(t, "/", cfg.Updates[0].Directory)
	assert.Equal(t, IntervalWeekly, cfg.Updates[0].Schedule.Interval)
	assert.Equal(t, "chore(deps)", cfg.Updates[0].EffectivePrefix())
	require.Contains(t, cfg.Updates[0].Groups, "python-dependencies")
	assert.Equal(t, []string{"*"}, cfg.Updates[0].Groups["python-dependencies"].Patterns)

	assert.Equal(t, EcosystemDocker, cfg.Updates[1].PackageEcosystem)
	assert.Equal(t, "chore(docker)", cfg.Updates[1].EffectivePrefix())

	assert.Equal(t, EcosystemGitHubActions, cfg.Updates[2].PackageEcosystem)
	assert.Equal(t, "chore(ci)", cfg.Updates[2].EffectivePrefix())
}

func TestLoadFile_UnknownFields(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join("testdata", "unknown_field.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "autoclose")

	// The lenient loader accepts the same document
	cfg, err := NewLenientLoader().LoadFile(filepath.Join("testdata", "unknown_field.yml"))
	require.NoError(t, err)
	assert.Equal(t, EcosystemGoMod, cfg.Updates[0].PackageEcosystem)
}

func TestLoadFile_Malformed(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join("testdata", "malformed.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed document")
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantErr  bool
	}{
		{name: "yml variant", fileName: "dependabot.yml"},
		{name: "yaml variant", fileName: "dependabot.yaml"},
		{name: "no config", fileName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectDir := t.TempDir()
			if tt.fileName != "" {
				githubDir := filepath.Join(projectDir, ".github")
				require.NoError(t, os.MkdirAll(githubDir, 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(githubDir, tt.fileName), []byte("version: 2\nupdates: []\n"), 0o644))
			}

			path, err := NewLoader().Locate(projectDir)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(projectDir, ".github", tt.fileName), path)
		})
	}
}

func TestLocate_PrefersYml(t *testing.T) {
	projectDir := t.TempDir()
	githubDir := filepath.Join(projectDir, ".github")
	require.NoError(t, os.MkdirAll(githubDir, 0o755))
	for _, name := range []string{"dependabot.yml", "dependabot.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(githubDir, name), []byte("version: 2\n"), 0o644))
	}

	path, err := NewLoader().Locate(projectDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(githubDir, "dependabot.yml"), path)
}

func TestParse_DoesNotApplyDefaults(t *testing.T) {
	cfg, err := NewLoader().Parse([]byte("version: 2\nupdates:\n  - package-ecosystem: gomod\n"))
	require.NoError(t, err)

	// Parse returns the document as written; omitted fields stay empty so
	// validation can report them
	require.Len(t, cfg.Updates, 1)
	assert.Empty(t, cfg.Updates[0].Directory)
	assert.Empty(t, cfg.Updates[0].Schedule.Interval)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Version: 2,
		Updates: []Update{
			{PackageEcosystem: EcosystemGoMod},
			{PackageEcosystem: EcosystemNpm, Schedule: Schedule{Interval: IntervalWeekly}},
			{PackageEcosystem: EcosystemDocker, Directories: []string{"/a", "/b"}},
		},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, "/", cfg.Updates[0].Directory)
	assert.Equal(t, IntervalDaily, cfg.Updates[0].Schedule.Interval)

	assert.Equal(t, "monday", cfg.Updates[1].Schedule.Day)

	// Entries with explicit directories keep them
	assert.Empty(t, cfg.Updates[2].Directory)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Updates[2].ScopeDirectories())
}
