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

// Package validate lints Dependabot configuration documents against the
// version-2 schema: known ecosystems, enumerated cadences, well-formed
// grouping rules and commit-message prefixes.
package validate

import (
	"fmt"
	"path"
	"strings"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

// Validate lints a configuration document and returns all findings.
// An empty result means the external service would accept the document.
func Validate(cfg *config.Config) Findings {
	var findings Findings

	if cfg.Version != config.SupportedVersion {
		findings.errorf("version-marker", "version",
			"schema version must be %d, got %d", config.SupportedVersion, cfg.Version)
	}

	if len(cfg.Updates) == 0 {
		findings.errorf("updates-required", "updates",
			"document must declare at least one update entry")
	}

	checkRegistries(cfg, &findings)

	seenScopes := map[string]int{}
	for i := range cfg.Updates {
		update := &cfg.Updates[i]
		entryPath := fmt.Sprintf("updates[%d]", i)

		checkEcosystem(update, entryPath, &findings)
		checkDirectories(update, entryPath, &findings)
		checkSchedule(&update.Schedule, entryPath+".schedule", &findings)
		checkGroups(update, entryPath, &findings)
		checkCommitMessage(update.CommitMessage, entryPath+".commit-message", &findings)
		checkAllowRules(update, entryPath, &findings)
		checkIgnoreRules(update, entryPath, &findings)
		checkLimits(update, entryPath, &findings)
		checkRegistryRefs(cfg, update, entryPath, &findings)
		checkDuplicateScopes(update, entryPath, seenScopes, &findings)
	}

	return findings
}

// checkEcosystem enforces the core invariant: each record must name a valid
// ecosystem type.
func checkEcosystem(update *config.Update, entryPath string, findings *Findings) {
	eco := update.PackageEcosystem
	if eco == "" {
		findings.errorf("ecosystem-required", entryPath+".package-ecosystem",
			"package-ecosystem is required")
		return
	}
	if !eco.Known() {
		findings.errorf("ecosystem-known", entryPath+".package-ecosystem",
			"unknown package-ecosystem %q", eco)
	}
}

func checkDirectories(update *config.Update, entryPath string, findings *Findings) {
	if update.Directory != "" && len(update.Directories) > 0 {
		findings.errorf("directory-exclusive", entryPath,
			"directory and directories are mutually exclusive")
	}

	dirs := update.ScopeDirectories()
	if len(dirs) == 0 {
		findings.errorf("directory-required", entryPath+".directory",
			"a scope directory is required")
		return
	}

	for j, dir := range dirs {
		dirPath := entryPath + ".directory"
		if len(update.Directories) > 0 {
			dirPath = fmt.Sprintf("%s.directories[%d]", entryPath, j)
		}
		if !strings.HasPrefix(dir, "/") {
			findings.errorf("directory-absolute", dirPath,
				"scope directory %q must start with \"/\"", dir)
			continue
		}
		if cleaned := path.Clean(dir); cleaned != dir {
			findings.warnf("directory-clean", dirPath,
				"scope directory %q is not in canonical form (want %q)", dir, cleaned)
		}
	}
}

func checkGroups(update *config.Update, entryPath string, findings *Findings) {
	for name, g := range update.Groups {
		groupPath := fmt.Sprintf("%s.groups[%s]", entryPath, name)

		// A grouping rule must say what it buckets: inclusion patterns,
		// a dependency type, or declared update types
		if len(g.Patterns) == 0 && g.DependencyType == "" && len(g.UpdateTypes) == 0 {
			findings.errorf("group-patterns-required", groupPath,
				"grouping rule %q must declare patterns, dependency-type or update-types", name)
		}

		checkPatternList(g.Patterns, groupPath+".patterns", findings)
		checkPatternList(g.ExcludePatterns, groupPath+".exclude-patterns", findings)

		if g.AppliesTo != "" && g.AppliesTo != "version-updates" && g.AppliesTo != "security-updates" {
			findings.errorf("group-applies-to", groupPath+".applies-to",
				"applies-to must be \"version-updates\" or \"security-updates\", got %q", g.AppliesTo)
		}
		if g.DependencyType != "" && g.DependencyType != "development" && g.DependencyType != "production" {
			findings.errorf("group-dependency-type", groupPath+".dependency-type",
				"dependency-type must be \"development\" or \"production\", got %q", g.DependencyType)
		}
		for _, updateType := range g.UpdateTypes {
			switch updateType {
			case "major", "minor", "patch":
			default:
				findings.errorf("group-update-types", groupPath+".update-types",
					"update-types entries must be major, minor or patch, got %q", updateType)
			}
		}
	}
}

func checkCommitMessage(cm *config.CommitMessage, msgPath string, findings *Findings) {
	if cm == nil {
		return
	}

	checkPrefix(cm.Prefix, msgPath+".prefix", findings)
	checkPrefix(cm.PrefixDevelopment, msgPath+".prefix-development", findings)

	if cm.Include != "" && cm.Include != "scope" {
		findings.errorf("commit-message-include", msgPath+".include",
			"include must be \"scope\", got %q", cm.Include)
	}
	if cm.Prefix == "" && cm.PrefixDevelopment == "" && cm.Include == "" {
		findings.warnf("commit-message-empty", msgPath,
			"commit-message is declared but sets nothing")
	}
}

// maxPrefixLength is the prefix length limit enforced by the external service
const maxPrefixLength = 50

func checkPrefix(prefix, prefixPath string, findings *Findings) {
	if prefix == "" {
		return
	}
	if len(prefix) > maxPrefixLength {
		findings.errorf("prefix-length", prefixPath,
			"commit-message prefix exceeds %d characters", maxPrefixLength)
	}
	if strings.TrimSpace(prefix) != prefix {
		findings.errorf("prefix-whitespace", prefixPath,
			"commit-message prefix %q has leading or trailing whitespace", prefix)
	}
}

func checkAllowRules(update *config.Update, entryPath string, findings *Findings) {
	for j, rule := range update.Allow {
		rulePath := fmt.Sprintf("%s.allow[%d]", entryPath, j)
		if rule.DependencyName == "" && rule.DependencyType == "" {
			findings.errorf("allow-empty", rulePath,
				"allow rule must set dependency-name or dependency-type")
		}
		switch rule.DependencyType {
		case "", "direct", "indirect", "all", "production", "development":
		default:
			findings.errorf("allow-dependency-type", rulePath+".dependency-type",
				"unknown dependency-type %q", rule.DependencyType)
		}
	}
}

func checkLimits(update *config.Update, entryPath string, findings *Findings) {
	if update.OpenPullRequestsLimit != nil && *update.OpenPullRequestsLimit < 0 {
		findings.errorf("pull-requests-limit", entryPath+".open-pull-requests-limit",
			"open-pull-requests-limit must not be negative")
	}

	switch update.RebaseStrategy {
	case "", "auto", "disabled":
	default:
		findings.errorf("rebase-strategy", entryPath+".rebase-strategy",
			"rebase-strategy must be \"auto\" or \"disabled\", got %q", update.RebaseStrategy)
	}

	switch update.VersioningStrategy {
	case "", "auto", "increase", "increase-if-necessary", "lockfile-only", "widen":
	default:
		findings.errorf("versioning-strategy", entryPath+".versioning-strategy",
			"unknown versioning-strategy %q", update.VersioningStrategy)
	}

	switch update.InsecureExternalCodeExecution {
	case "", "allow", "deny":
	default:
		findings.errorf("insecure-code-execution", entryPath+".insecure-external-code-execution",
			"insecure-external-code-execution must be \"allow\" or \"deny\", got %q",
			update.InsecureExternalCodeExecution)
	}
}

func checkRegistries(cfg *config.Config, findings *Findings) {
	referenced := map[string]bool{}
	for _, update := range cfg.Updates {
		for _, name := range update.Registries {
			referenced[name] = true
		}
	}

	for name, registry := range cfg.Registries {
		registryPath := fmt.Sprintf("registries[%s]", name)
		if registry.Type == "" {
			findings.errorf("registry-type-required", registryPath+".type",
				"registry %q must declare a type", name)
		}
		if registry.URL == "" {
			findings.errorf("registry-url-required", registryPath+".url",
				"registry %q must declare a url", name)
		}
		if !referenced[name] {
			findings.warnf("registry-unused", registryPath,
				"registry %q is declared but no update entry references it", name)
		}
	}
}

func checkRegistryRefs(cfg *config.Config, update *config.Update, entryPath string, findings *Findings) {
	for j, name := range update.Registries {
		if _, ok := cfg.Registries[name]; !ok {
			findings.errorf("registry-undeclared", fmt.Sprintf("%s.registries[%d]", entryPath, j),
				"update entry references undeclared registry %q", name)
		}
	}
}

// checkDuplicateScopes rejects two entries monitoring the same ecosystem in
// the same scope directory, which the external service treats as a conflict.
func checkDuplicateScopes(update *config.Update, entryPath string, seen map[string]int, findings *Findings) {
	for _, dir := range update.ScopeDirectories() {
		key := string(update.PackageEcosystem) + "\x00" + dir + "\x00" + update.TargetBranch
		if prev, ok := seen[key]; ok {
			findings.errorf("duplicate-scope", entryPath,
				"duplicate entry for ecosystem %q in directory %q (first declared at updates[%d])",
				update.PackageEcosystem, dir, prev)
			continue
		}
		seen[key] = entryIndex(entryPath)
	}
}

func entryIndex(entryPath string) int {
	var idx int
	fmt.Sscanf(entryPath, "updates[%d]", &idx)
	return idx
}
