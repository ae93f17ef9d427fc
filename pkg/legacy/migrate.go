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

package legacy

import (
	"github.com/sirupsen/logrus"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

// Migrate converts a legacy configuration to a version-2 document.
// The legacy format only ever described a Go module project, so the result
// is a single gomod entry carrying the legacy labels, assignees and prefix.
func Migrate(legacy *Config) *config.Config {
	entry := config.Update{
		PackageEcosystem: config.EcosystemGoMod,
		Directory:        "/",
		Schedule:         migrateSchedule(legacy.Schedule),
		Labels:           legacy.PR.Labels,
		Assignees:        legacy.PR.Assignees,
	}

	if legacy.Repo.Branch != "" && legacy.Repo.Branch != "main" {
		entry.TargetBranch = legacy.Repo.Branch
	}

	if legacy.PR.CommitPrefix != "" {
		entry.CommitMessage = &config.CommitMessage{Prefix: legacy.PR.CommitPrefix}
	}

	return &config.Config{
		Version: config.SupportedVersion,
		Updates: []config.Update{entry},
	}
}

// migrateSchedule maps the legacy free-form cadence string onto an
// enumerated interval, defaulting to daily as the legacy tool did.
func migrateSchedule(cadence string) config.Schedule {
	interval := config.Interval(cadence)
	switch interval {
	case "":
		interval = config.IntervalDaily
	case config.IntervalDaily, config.IntervalWeekly, config.IntervalMonthly:
	default:
		logrus.Warnf("Unknown legacy schedule %q, falling back to daily", cadence)
		interval = config.IntervalDaily
	}

	schedule := config.Schedule{Interval: interval}
	if interval == config.IntervalWeekly {
		schedule.Day = "monday"
	}
	return schedule
}
