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

import "sort"

// Ecosystem identifies the dependency universe an update policy applies to
type Ecosystem string

const (
	// EcosystemGoMod represents Go module dependencies
	EcosystemGoMod Ecosystem = "gomod"
	// EcosystemGitHubActions represents GitHub Actions workflow dependencies
	EcosystemGitHubActions Ecosystem = "github-actions"
	// EcosystemDocker represents container base-image dependencies
	EcosystemDocker Ecosystem = "docker"
	// EcosystemPip represents Python package dependencies
	EcosystemPip Ecosystem = "pip"
	// EcosystemNpm represents Node.js package dependencies
	EcosystemNpm Ecosystem = "npm"
	// EcosystemBundler represents Ruby gem dependencies
	EcosystemBundler Ecosystem = "bundler"
	// EcosystemCargo represents Rust crate dependencies
	EcosystemCargo Ecosystem = "cargo"
	// EcosystemComposer represents PHP package dependencies
	EcosystemComposer Ecosystem = "composer"
	// EcosystemGradle represents Gradle build dependencies
	EcosystemGradle Ecosystem = "gradle"
	// EcosystemMaven represents Maven build dependencies
	EcosystemMaven Ecosystem = "maven"
	// EcosystemNuGet represents .NET package dependencies
	EcosystemNuGet Ecosystem = "nuget"
	// EcosystemTerraform represents Terraform provider and module dependencies
	EcosystemTerraform Ecosystem = "terraform"
	// EcosystemGitSubmodule represents git submodule dependencies
	EcosystemGitSubmodule Ecosystem = "gitsubmodule"
	// EcosystemHelm represents Helm chart dependencies
	EcosystemHelm Ecosystem = "helm"
	// EcosystemSwift represents Swift package dependencies
	EcosystemSwift Ecosystem = "swift"
	// EcosystemPub represents Dart/Flutter package dependencies
	EcosystemPub Ecosystem = "pub"
	// EcosystemMix represents Elixir hex dependencies
	EcosystemMix Ecosystem = "mix"
	// EcosystemElm represents Elm package dependencies
	EcosystemElm Ecosystem = "elm"
	// EcosystemDevcontainers represents devcontainer feature dependencies
	EcosystemDevcontainers Ecosystem = "devcontainers"
)

// knownEcosystems is the set of ecosystem identifiers accepted by the schema
var knownEcosystems = map[Ecosystem]bool{
	EcosystemGoMod:         true,
	EcosystemGitHubActions: true,
	EcosystemDocker:        true,
	EcosystemPip:           true,
	EcosystemNpm:           true,
	EcosystemBundler:       true,
	EcosystemCargo:         true,
	EcosystemComposer:      true,
	EcosystemGradle:        true,
	EcosystemMaven:         true,
	EcosystemNuGet:         true,
	EcosystemTerraform:     true,
	EcosystemGitSubmodule:  true,
	EcosystemHelm:          true,
	EcosystemSwift:         true,
	EcosystemPub:           true,
	EcosystemMix:           true,
	EcosystemElm:           true,
	EcosystemDevcontainers: true,
}

// Known reports whether the ecosystem identifier is a supported value
func (e Ecosystem) Known() bool {
	return knownEcosystems[e]
}

// KnownEcosystems returns the supported ecosystem identifiers in stable order
func KnownEcosystems() []Ecosystem {
	ecosystems := make([]Ecosystem, 0, len(knownEcosystems))
	for eco := range knownEcosystems {
		ecosystems = append(ecosystems, eco)
	}
	sort.Slice(ecosystems, func(i, j int) bool { return ecosystems[i] < ecosystems[j] })
	return ecosystems
}

// Interval is the recurrence cadence of an update schedule
type Interval string

const (
	// IntervalDaily checks for updates every weekday
	IntervalDaily Interval = "daily"
	// IntervalWeekly checks for updates once a week
	IntervalWeekly Interval = "weekly"
	// IntervalMonthly checks for updates on the first of the month
	IntervalMonthly Interval = "monthly"
	// IntervalQuarterly checks for updates on the first day of each quarter
	IntervalQuarterly Interval = "quarterly"
	// IntervalSemiannually checks for updates in January and July
	IntervalSemiannually Interval = "semiannually"
	// IntervalYearly checks for updates in January
	IntervalYearly Interval = "yearly"
)

// knownIntervals is the set of enumerated cadences accepted by the schema
var knownIntervals = map[Interval]bool{
	IntervalDaily:        true,
	IntervalWeekly:       true,
	IntervalMonthly:      true,
	IntervalQuarterly:    true,
	IntervalSemiannually: true,
	IntervalYearly:       true,
}

// Known reports whether the interval is a supported cadence
func (i Interval) Known() bool {
	return knownIntervals[i]
}

// knownWeekdays are the day values accepted for weekly schedules
var knownWeekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// KnownWeekday reports whether day is a valid schedule day value
func KnownWeekday(day string) bool {
	return knownWeekdays[day]
}
