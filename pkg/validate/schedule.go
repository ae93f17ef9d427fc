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
	"regexp"
	"time"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

// timeOfDayRE matches the 24h "HH:MM" format accepted for schedule times
var timeOfDayRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// checkSchedule validates the recurrence interval of an update entry:
// the interval must be one of the enumerated cadences, day only applies to
// weekly schedules, time must be HH:MM and timezone a valid IANA zone.
func checkSchedule(schedule *config.Schedule, schedulePath string, findings *Findings) {
	if schedule.Interval == "" {
		findings.errorf("interval-required", schedulePath+".interval",
			"schedule interval is required")
	} else if !schedule.Interval.Known() {
		findings.errorf("interval-known", schedulePath+".interval",
			"unknown schedule interval %q", schedule.Interval)
	}

	if schedule.Day != "" {
		if schedule.Interval != config.IntervalWeekly {
			findings.warnf("day-weekly-only", schedulePath+".day",
				"schedule day is only honored with a weekly interval")
		}
		if !config.KnownWeekday(schedule.Day) {
			findings.errorf("day-known", schedulePath+".day",
				"unknown schedule day %q", schedule.Day)
		}
	}

	if schedule.Time != "" && !timeOfDayRE.MatchString(schedule.Time) {
		findings.errorf("time-format", schedulePath+".time",
			"schedule time %q must be in 24h HH:MM format", schedule.Time)
	}

	if schedule.Timezone != "" {
		if _, err := time.LoadLocation(schedule.Timezone); err != nil {
			findings.errorf("timezone-known", schedulePath+".timezone",
				"unknown timezone %q", schedule.Timezone)
		}
		if schedule.Time == "" {
			findings.warnf("timezone-without-time", schedulePath+".timezone",
				"schedule timezone has no effect without a schedule time")
		}
	}
}
