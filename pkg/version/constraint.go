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

// Package version validates semantic-version constraint expressions that
// appear in ignore rules (e.g. ">= 2.0, < 3").
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ValidateConstraint checks that the expression parses as a semantic-version
// constraint. The empty string is rejected: an ignore rule with an empty
// constraint would silently match nothing.
func ValidateConstraint(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("empty version constraint")
	}
	if _, err := semver.NewConstraint(expr); err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", expr, err)
	}
	return nil
}

// ValidVersion reports whether the string parses as a semantic version.
// Handles the optional "v" prefix and short forms like "1.2".
func ValidVersion(version string) bool {
	_, err := semver.NewVersion(Normalize(version))
	return err == nil
}

// Normalize expands shortened version strings to full semver form so the
// parser accepts them ("1" -> "1.0.0", "1.2" -> "1.2.0").
func Normalize(version string) string {
	if version == "" {
		return version
	}

	normalized := strings.TrimPrefix(version, "v")

	switch parts := strings.Split(normalized, "."); len(parts) {
	case 1:
		normalized += ".0.0"
	case 2:
		normalized += ".0"
	}
	return normalized
}
