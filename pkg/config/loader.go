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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a project has no dependabot configuration file
var ErrNotFound = errors.New("no dependabot configuration found")

// candidateRelPaths are the locations probed for a configuration document,
// in priority order.
var candidateRelPaths = []string{
	filepath.Join(".github", "dependabot.yml"),
	filepath.Join(".github", "dependabot.yaml"),
}

// Loader reads Dependabot configuration documents from disk
type Loader struct {
	// strict rejects unknown document fields when true
	strict bool
}

// NewLoader creates a new configuration loader with strict field checking
func NewLoader() *Loader {
	return &Loader{strict: true}
}

// NewLenientLoader creates a loader that ignores unknown document fields
func NewLenientLoader() *Loader {
	return &Loader{strict: false}
}

// Locate returns the path of the configuration document inside projectPath,
// or ErrNotFound when neither .yml nor .yaml variant exists.
func (l *Loader) Locate(projectPath string) (string, error) {
	for _, rel := range candidateRelPaths {
		configPath := filepath.Join(projectPath, rel)
		if _, err := os.Stat(configPath); err == nil {
			logrus.Debugf("Found repository configuration: %s", configPath)
			return configPath, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, projectPath)
}

// LoadProject locates and parses the configuration document of projectPath
func (l *Loader) LoadProject(projectPath string) (*Config, error) {
	configPath, err := l.Locate(projectPath)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile reads and parses a configuration document from an explicit path
func (l *Loader) LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document from raw YAML bytes.
// The result is the document exactly as written: no defaults are filled in,
// so validation sees what the maintainer actually committed. Callers that
// want the effective configuration apply ApplyDefaults afterwards.
func (l *Loader) Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(l.strict)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills in values the external service would assume when the
// document leaves them out.
func ApplyDefaults(cfg *Config) {
	for i := range cfg.Updates {
		update := &cfg.Updates[i]

		// A single entry without any directory scopes the whole tree
		if update.Directory == "" && len(update.Directories) == 0 {
			update.Directory = "/"
		}

		if update.Schedule.Interval == "" {
			update.Schedule.Interval = IntervalDaily
		}

		// Weekly schedules default to Monday
		if update.Schedule.Interval == IntervalWeekly && update.Schedule.Day == "" {
			update.Schedule.Day = "monday"
		}
	}
}
