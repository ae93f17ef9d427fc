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

// Package group implements the pattern-based bucketing semantics of named
// grouping rules: deciding which group, if any, a dependency update lands in.
package group

import (
	"fmt"
	"strings"
)

// Pattern is a compiled dependency-name pattern. Patterns are literal names
// with "*" matching any (possibly empty) run of characters, e.g.
// "github.com/aws/*" or "*-sdk".
type Pattern struct {
	raw      string
	segments []string
}

// Compile validates and compiles a dependency-name pattern
func Compile(raw string) (*Pattern, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	if strings.ContainsAny(raw, " \t") {
		return nil, fmt.Errorf("pattern %q must not contain whitespace", raw)
	}
	return &Pattern{raw: raw, segments: strings.Split(raw, "*")}, nil
}

// String returns the original pattern text
func (p *Pattern) String() string {
	return p.raw
}

// Match reports whether the dependency name matches the pattern.
// Matching is case-insensitive, as dependency names are compared by the
// external service.
func (p *Pattern) Match(name string) bool {
	name = strings.ToLower(name)
	segments := p.segments

	// Fast path for literal patterns
	if len(segments) == 1 {
		return name == strings.ToLower(segments[0])
	}

	// Anchor the first and last segments, greedily consume the rest
	first := strings.ToLower(segments[0])
	if !strings.HasPrefix(name, first) {
		return false
	}
	name = name[len(first):]

	last := strings.ToLower(segments[len(segments)-1])
	if !strings.HasSuffix(name, last) {
		return false
	}
	name = name[:len(name)-len(last)]

	for _, segment := range segments[1 : len(segments)-1] {
		segment = strings.ToLower(segment)
		idx := strings.Index(name, segment)
		if idx < 0 {
			return false
		}
		name = name[idx+len(segment):]
	}
	return true
}

// MatchAny reports whether the dependency name matches any of the patterns
func MatchAny(patterns []*Pattern, name string) bool {
	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

// CompileAll compiles a list of raw patterns, failing on the first invalid one
func CompileAll(raws []string) ([]*Pattern, error) {
	patterns := make([]*Pattern, 0, len(raws))
	for _, raw := range raws {
		pattern, err := Compile(raw)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}
