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

// Package config models the version-2 Dependabot configuration document
// (.github/dependabot.yml) and provides loading, defaulting and writing.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SupportedVersion is the only schema version this toolkit understands.
const SupportedVersion = 2

// Config represents a complete Dependabot configuration document
type Config struct {
	// Version is the schema version marker (must be 2)
	Version int `yaml:"version" json:"version"`
	// Registries declares private registries referenced by update entries
	Registries map[string]Registry `yaml:"registries,omitempty" json:"registries,omitempty"`
	// Updates is the list of update policies, one per monitored ecosystem/directory
	Updates []Update `yaml:"updates" json:"updates"`
}

// Update represents a single update policy entry
type Update struct {
	// PackageEcosystem names the dependency universe this entry monitors
	PackageEcosystem Ecosystem `yaml:"package-ecosystem" json:"package-ecosystem"`
	// Directory is the scope directory to scan for manifests, rooted at "/"
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty"`
	// Directories lists multiple scope directories (mutually exclusive with Directory)
	Directories []string `yaml:"directories,omitempty" json:"directories,omitempty"`
	// Schedule is the update-check cadence
	Schedule Schedule `yaml:"schedule" json:"schedule"`
	// Groups holds named grouping rules that batch related updates into one change set
	Groups map[string]Group `yaml:"groups,omitempty" json:"groups,omitempty"`
	// CommitMessage customizes generated commit messages and PR titles
	CommitMessage *CommitMessage `yaml:"commit-message,omitempty" json:"commit-message,omitempty"`
	// Registries references registry names declared at the top level
	Registries []string `yaml:"registries,omitempty" json:"registries,omitempty"`
	// Labels are labels to add to generated change proposals
	Labels []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	// Assignees are users to assign to generated change proposals
	Assignees []string `yaml:"assignees,omitempty" json:"assignees,omitempty"`
	// Reviewers are users or teams requested to review generated change proposals
	Reviewers []string `yaml:"reviewers,omitempty" json:"reviewers,omitempty"`
	// TargetBranch is the branch change proposals are opened against
	TargetBranch string `yaml:"target-branch,omitempty" json:"target-branch,omitempty"`
	// OpenPullRequestsLimit caps concurrently open change proposals (0 disables version updates)
	OpenPullRequestsLimit *int `yaml:"open-pull-requests-limit,omitempty" json:"open-pull-requests-limit,omitempty"`
	// RebaseStrategy controls automatic rebasing ("auto" or "disabled")
	RebaseStrategy string `yaml:"rebase-strategy,omitempty" json:"rebase-strategy,omitempty"`
	// VersioningStrategy controls how manifest version requirements are rewritten
	VersioningStrategy string `yaml:"versioning-strategy,omitempty" json:"versioning-strategy,omitempty"`
	// Allow restricts which dependencies are eligible for updates
	Allow []AllowRule `yaml:"allow,omitempty" json:"allow,omitempty"`
	// Ignore excludes dependencies or version ranges from updates
	Ignore []IgnoreRule `yaml:"ignore,omitempty" json:"ignore,omitempty"`
	// InsecureExternalCodeExecution permits external code during updates ("allow"/"deny")
	InsecureExternalCodeExecution string `yaml:"insecure-external-code-execution,omitempty" json:"insecure-external-code-execution,omitempty"`
	// Vendor updates vendored dependencies when true
	Vendor bool `yaml:"vendor,omitempty" json:"vendor,omitempty"`
}

// Schedule represents the recurrence interval of an update policy
type Schedule struct {
	// Interval is the recurrence cadence (daily, weekly, monthly, ...)
	Interval Interval `yaml:"interval" json:"interval"`
	// Day selects the weekday for weekly schedules (e.g. "monday")
	Day string `yaml:"day,omitempty" json:"day,omitempty"`
	// Time is the check time of day in 24h "HH:MM" format
	Time string `yaml:"time,omitempty" json:"time,omitempty"`
	// Timezone is an IANA zone identifier for Time (e.g. "Asia/Shanghai")
	Timezone string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
}

// Group represents a named grouping rule that buckets related updates
type Group struct {
	// AppliesTo selects which update type the group applies to
	// ("version-updates" or "security-updates")
	AppliesTo string `yaml:"applies-to,omitempty" json:"applies-to,omitempty"`
	// DependencyType restricts the group to "development" or "production" dependencies
	DependencyType string `yaml:"dependency-type,omitempty" json:"dependency-type,omitempty"`
	// Patterns are dependency-name patterns included in the group ("*" wildcards)
	Patterns []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	// ExcludePatterns are dependency-name patterns carved out of the group
	ExcludePatterns []string `yaml:"exclude-patterns,omitempty" json:"exclude-patterns,omitempty"`
	// UpdateTypes restricts the group to semver bump levels ("minor", "patch", ...)
	UpdateTypes []string `yaml:"update-types,omitempty" json:"update-types,omitempty"`
}

// CommitMessage customizes the commit-message prefix of generated proposals
type CommitMessage struct {
	// Prefix is prepended to commit messages and proposal titles
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	// PrefixDevelopment overrides Prefix for development-dependency updates
	PrefixDevelopment string `yaml:"prefix-development,omitempty" json:"prefix-development,omitempty"`
	// Include adds extra information to the message; "scope" is the only supported value
	Include string `yaml:"include,omitempty" json:"include,omitempty"`
}

// AllowRule restricts updates to matching dependencies
type AllowRule struct {
	// DependencyName matches dependencies by name ("*" wildcards allowed)
	DependencyName string `yaml:"dependency-name,omitempty" json:"dependency-name,omitempty"`
	// DependencyType matches by dependency class ("direct", "indirect", "all", ...)
	DependencyType string `yaml:"dependency-type,omitempty" json:"dependency-type,omitempty"`
}

// IgnoreRule excludes dependencies or version ranges from updates
type IgnoreRule struct {
	// DependencyName matches dependencies by name ("*" wildcards allowed)
	DependencyName string `yaml:"dependency-name" json:"dependency-name"`
	// Versions are version constraints to ignore (e.g. ">= 2.0, < 3")
	Versions []string `yaml:"versions,omitempty" json:"versions,omitempty"`
	// UpdateTypes are semver bump levels to ignore (e.g. "version-update:semver-major")
	UpdateTypes []string `yaml:"update-types,omitempty" json:"update-types,omitempty"`
}

// Registry declares a private registry that update entries may reference
type Registry struct {
	// Type identifies the registry kind (e.g. "docker-registry", "npm-registry")
	Type string `yaml:"type" json:"type"`
	// URL is the registry endpoint
	URL string `yaml:"url" json:"url"`
	// Username for basic authentication
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	// Password for basic authentication
	Password string `yaml:"password,omitempty" json:"password,omitempty"`
	// Token for token authentication
	Token string `yaml:"token,omitempty" json:"token,omitempty"`
	// ReplacesBase replaces the ecosystem's default registry when true
	ReplacesBase bool `yaml:"replaces-base,omitempty" json:"replaces-base,omitempty"`
}

// ScopeDirectories returns the effective scope directories of the entry,
// regardless of whether the singular or plural form was used.
func (u *Update) ScopeDirectories() []string {
	if len(u.Directories) > 0 {
		return u.Directories
	}
	if u.Directory != "" {
		return []string{u.Directory}
	}
	return nil
}

// HasGroups reports whether the entry declares any grouping rules
func (u *Update) HasGroups() bool {
	return len(u.Groups) > 0
}

// EffectivePrefix returns the commit-message prefix applied to generated
// proposals, or the empty string when none is configured.
func (u *Update) EffectivePrefix() string {
	if u.CommitMessage == nil {
		return ""
	}
	return u.CommitMessage.Prefix
}

// EntryForEcosystem returns the first update entry for the given ecosystem,
// or nil if the document has none.
func (c *Config) EntryForEcosystem(eco Ecosystem) *Update {
	for i := range c.Updates {
		if c.Updates[i].PackageEcosystem == eco {
			return &c.Updates[i]
		}
	}
	return nil
}

// String implements fmt.Stringer interface for better debugging experience
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		logrus.Errorf("Failed to marshal config to JSON: %v", err)
		// Format the value, not the pointer, so this fallback cannot
		// re-enter String
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}
