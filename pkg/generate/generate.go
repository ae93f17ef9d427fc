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

package generate

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

// Options control the generated configuration document
type Options struct {
	// Interval is the cadence of every generated entry (default: weekly)
	Interval config.Interval
	// Day is the check day for weekly schedules
	Day string
	// Labels are attached to every generated entry
	Labels []string
	// Assignees are attached to every generated entry
	Assignees []string
}

// commitPrefixes maps ecosystems to conventional commit-message prefixes
var commitPrefixes = map[config.Ecosystem]string{
	config.EcosystemGitHubActions: "chore(ci)",
	config.EcosystemDocker:        "chore(docker)",
}

// defaultCommitPrefix annotates all other dependency updates
const defaultCommitPrefix = "chore(deps)"

// Generate walks the project tree and builds a configuration document with
// one update entry per detected ecosystem and scope directory.
func Generate(projectPath string, opts Options) (*config.Config, error) {
	if opts.Interval == "" {
		opts.Interval = config.IntervalWeekly
	}
	if !opts.Interval.Known() {
		return nil, fmt.Errorf("unknown schedule interval %q", opts.Interval)
	}

	detected, err := DetectEcosystems(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project ecosystems: %w", err)
	}
	if len(detected) == 0 {
		return nil, fmt.Errorf("no supported package ecosystems found in %s", projectPath)
	}

	ecosystems := make([]config.Ecosystem, 0, len(detected))
	for eco := range detected {
		ecosystems = append(ecosystems, eco)
	}
	sort.Slice(ecosystems, func(i, j int) bool { return ecosystems[i] < ecosystems[j] })

	cfg := &config.Config{Version: config.SupportedVersion}
	for _, eco := range ecosystems {
		for _, dir := range detected[eco] {
			cfg.Updates = append(cfg.Updates, newEntry(eco, dir, opts))
		}
	}

	logrus.Infof("Generated configuration with %d update entries", len(cfg.Updates))
	return cfg, nil
}

func newEntry(eco config.Ecosystem, dir string, opts Options) config.Update {
	prefix, ok := commitPrefixes[eco]
	if !ok {
		prefix = defaultCommitPrefix
	}

	schedule := config.Schedule{Interval: opts.Interval}
	if opts.Interval == config.IntervalWeekly {
		schedule.Day = opts.Day
		if schedule.Day == "" {
			schedule.Day = "monday"
		}
	}

	return config.Update{
		PackageEcosystem: eco,
		Directory:        dir,
		Schedule:         schedule,
		CommitMessage:    &config.CommitMessage{Prefix: prefix},
		Labels:           opts.Labels,
		Assignees:        opts.Assignees,
	}
}
