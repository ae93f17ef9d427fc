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

package validate

import (
	"fmt"
	"strings"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/group"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/version"
)

// checkPatternList validates that each dependency-name pattern compiles
func checkPatternList(patterns []string, listPath string, findings *Findings) {
	for j, raw := range patterns {
		if _, err := group.Compile(raw); err != nil {
			findings.errorf("pattern-valid", fmt.Sprintf("%s[%d]", listPath, j),
				"invalid pattern: %v", err)
		}
	}
}

// checkIgnoreRules validates ignore-rule dependency names, version
// constraints and update types.
func checkIgnoreRules(update *config.Update, entryPath string, findings *Findings) {
	for j, rule := range update.Ignore {
		rulePath := fmt.Sprintf("%s.ignore[%d]", entryPath, j)

		if rule.DependencyName == "" {
			findings.errorf("ignore-dependency-name", rulePath+".dependency-name",
				"ignore rule must set dependency-name")
		} else if _, err := group.Compile(rule.DependencyName); err != nil {
			findings.errorf("ignore-dependency-name", rulePath+".dependency-name",
				"invalid dependency-name pattern: %v", err)
		}

		for k, constraint := range rule.Versions {
			if err := version.ValidateConstraint(constraint); err != nil {
				findings.errorf("ignore-versions", fmt.Sprintf("%s.versions[%d]", rulePath, k),
					"%v", err)
			}
		}

		for k, updateType := range rule.UpdateTypes {
			if !strings.HasPrefix(updateType, "version-update:semver-") {
				findings.errorf("ignore-update-types", fmt.Sprintf("%s.update-types[%d]", rulePath, k),
					"update-types entries must look like \"version-update:semver-major\", got %q", updateType)
				continue
			}
			switch strings.TrimPrefix(updateType, "version-update:semver-") {
			case "major", "minor", "patch":
			default:
				findings.errorf("ignore-update-types", fmt.Sprintf("%s.update-types[%d]", rulePath, k),
					"unknown semver level in %q", updateType)
			}
		}
	}
}
