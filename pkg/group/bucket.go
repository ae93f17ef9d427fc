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

package group

import (
	"fmt"
	"sort"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

// Ungrouped is the bucket name for dependencies no grouping rule claims.
// Each such dependency would get its own change proposal.
const Ungrouped = ""

// rule is a compiled grouping rule
type rule struct {
	name     string
	patterns []*Pattern
	excludes []*Pattern
}

// Bucketer assigns dependency names to the named buckets of one update entry
type Bucketer struct {
	rules []rule
}

// NewBucketer compiles the grouping rules of an update entry.
// Rules are evaluated in lexical name order so bucketing is deterministic
// regardless of YAML map iteration order.
func NewBucketer(groups map[string]config.Group) (*Bucketer, error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	bucketer := &Bucketer{rules: make([]rule, 0, len(groups))}
	for _, name := range names {
		g := groups[name]

		patterns, err := CompileAll(g.Patterns)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		excludes, err := CompileAll(g.ExcludePatterns)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		// A group without inclusion patterns claims everything its
		// excludes do not carve out
		if len(patterns) == 0 {
			catchAll, err := Compile("*")
			if err != nil {
				return nil, err
			}
			patterns = []*Pattern{catchAll}
		}

		bucketer.rules = append(bucketer.rules, rule{
			name:     name,
			patterns: patterns,
			excludes: excludes,
		})
	}
	return bucketer, nil
}

// Bucket returns the name of the group that claims the dependency, or
// Ungrouped when no rule matches. First matching rule wins.
func (b *Bucketer) Bucket(dependency string) string {
	for _, r := range b.rules {
		if !MatchAny(r.patterns, dependency) {
			continue
		}
		if MatchAny(r.excludes, dependency) {
			continue
		}
		return r.name
	}
	return Ungrouped
}

// BucketAll buckets a list of dependency names, returning group name to
// members in the order given. Ungrouped dependencies appear under Ungrouped.
func (b *Bucketer) BucketAll(dependencies []string) map[string][]string {
	buckets := make(map[string][]string)
	for _, dependency := range dependencies {
		name := b.Bucket(dependency)
		buckets[name] = append(buckets[name], dependency)
	}
	return buckets
}
