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

// Package legacy reads the pre-v2 DependaBot configuration format and
// migrates it to a version-2 document.
package legacy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the legacy DependaBot configuration format
type Config struct {
	// Repo contains repository information
	Repo RepoConfig `yaml:"repo" json:"repo"`
	// PR contains change-proposal configuration
	PR PRConfig `yaml:"pr" json:"pr"`
	// Schedule is the legacy free-form cadence string (e.g. "weekly")
	Schedule string `yaml:"schedule" json:"schedule"`
}

// RepoConfig contains repository information in the legacy format
type RepoConfig struct {
	// URL is the repository URL (e.g. "https://github.com/example/repo")
	URL string `yaml:"url" json:"url"`
	// Branch is the repository branch (e.g. "main")
	Branch string `yaml:"branch" json:"branch"`
}

// PRConfig contains change-proposal configuration in the legacy format
type PRConfig struct {
	// Labels are labels to add to created proposals
	Labels []string `yaml:"labels" json:"labels"`
	// Assignees are users to assign to created proposals
	Assignees []string `yaml:"assignees" json:"assignees"`
	// CommitPrefix is the legacy commit-message prefix
	CommitPrefix string `yaml:"commitPrefix" json:"commitPrefix"`
}

// Load reads a legacy configuration file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse legacy config file %s: %w", configPath, err)
	}
	return &cfg, nil
}
