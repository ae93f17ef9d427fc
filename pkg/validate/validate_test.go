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
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

func TestValidate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Document Validator Suite")
}

// validEntry returns a minimal entry that passes every rule
func validEntry() config.Update {
	return config.Update{
		PackageEcosystem: config.EcosystemGoMod,
		Directory:        "/",
		Schedule:         config.Schedule{Interval: config.IntervalDaily},
	}
}

// validConfig returns a minimal document that passes every rule
func validConfig() *config.Config {
	return &config.Config{
		Version: config.SupportedVersion,
		Updates: []config.Update{validEntry()},
	}
}

// rules collects the rule identifiers of all findings
func rules(findings Findings) []string {
	ids := make([]string, 0, len(findings))
	for _, finding := range findings {
		ids = append(ids, finding.Rule)
	}
	return ids
}

var _ = Describe("Document Validator", func() {
	Context("when the document is well-formed", func() {
		It("should produce no findings", func() {
			Expect(Validate(validConfig())).To(BeEmpty())
		})

		It("should accept all known ecosystems", func() {
			for _, eco := range config.KnownEcosystems() {
				cfg := validConfig()
				cfg.Updates[0].PackageEcosystem = eco
				Expect(Validate(cfg)).To(BeEmpty())
			}
		})
	})

	Context("when linting documents as parsed", func() {
		It("should flag missing directory and interval before defaults are applied", func() {
			raw := []byte("version: 2\nupdates:\n  - package-ecosystem: gomod\n")
			cfg, err := config.NewLoader().Parse(raw)
			Expect(err).NotTo(HaveOccurred())

			ids := rules(Validate(cfg))
			Expect(ids).To(ContainElement("directory-required"))
			Expect(ids).To(ContainElement("interval-required"))
		})

		It("should pass the same document once defaults are applied", func() {
			raw := []byte("version: 2\nupdates:\n  - package-ecosystem: gomod\n")
			cfg, err := config.NewLoader().Parse(raw)
			Expect(err).NotTo(HaveOccurred())

			config.ApplyDefaults(cfg)
			Expect(Validate(cfg)).To(BeEmpty())
		})
	})

	Context("when checking the document shell", func() {
		It("should reject a wrong version marker", func() {
			cfg := validConfig()
			cfg.Version = 1
			Expect(rules(Validate(cfg))).To(ContainElement("version-marker"))
		})

		It("should require at least one update entry", func() {
			cfg := &config.Config{Version: config.SupportedVersion}
			Expect(rules(Validate(cfg))).To(ContainElement("updates-required"))
		})
	})

	Context("when checking ecosystem identifiers", func() {
		It("should reject unknown ecosystems", func() {
			cfg := validConfig()
			cfg.Updates[0].PackageEcosystem = "golang"
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("ecosystem-known"))
			Expect(findings[0].Path).To(Equal("updates[0].package-ecosystem"))
		})

		It("should require the ecosystem identifier", func() {
			cfg := validConfig()
			cfg.Updates[0].PackageEcosystem = ""
			Expect(rules(Validate(cfg))).To(ContainElement("ecosystem-required"))
		})
	})

	Context("when checking scope directories", func() {
		It("should require a scope directory", func() {
			cfg := validConfig()
			cfg.Updates[0].Directory = ""
			Expect(rules(Validate(cfg))).To(ContainElement("directory-required"))
		})

		It("should require absolute directories", func() {
			cfg := validConfig()
			cfg.Updates[0].Directory = "src"
			Expect(rules(Validate(cfg))).To(ContainElement("directory-absolute"))
		})

		It("should warn on non-canonical directories", func() {
			cfg := validConfig()
			cfg.Updates[0].Directory = "/src/"
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("directory-clean"))
			Expect(findings.HasErrors()).To(BeFalse())
		})

		It("should reject directory together with directories", func() {
			cfg := validConfig()
			cfg.Updates[0].Directories = []string{"/a"}
			Expect(rules(Validate(cfg))).To(ContainElement("directory-exclusive"))
		})

		It("should validate each entry of directories", func() {
			cfg := validConfig()
			cfg.Updates[0].Directory = ""
			cfg.Updates[0].Directories = []string{"/ok", "bad"}
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("directory-absolute"))
			Expect(findings[0].Path).To(Equal("updates[0].directories[1]"))
		})

		It("should reject duplicate ecosystem/directory pairs", func() {
			cfg := validConfig()
			cfg.Updates = append(cfg.Updates, validEntry())
			Expect(rules(Validate(cfg))).To(ContainElement("duplicate-scope"))
		})

		It("should allow the same directory for different ecosystems", func() {
			cfg := validConfig()
			second := validEntry()
			second.PackageEcosystem = config.EcosystemDocker
			cfg.Updates = append(cfg.Updates, second)
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should allow the same scope on different target branches", func() {
			cfg := validConfig()
			second := validEntry()
			second.TargetBranch = "release-1.0"
			cfg.Updates = append(cfg.Updates, second)
			Expect(Validate(cfg)).To(BeEmpty())
		})
	})

	Context("when checking schedules", func() {
		It("should reject unknown intervals", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule.Interval = "fortnightly"
			Expect(rules(Validate(cfg))).To(ContainElement("interval-known"))
		})

		It("should require an interval", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule.Interval = ""
			Expect(rules(Validate(cfg))).To(ContainElement("interval-required"))
		})

		It("should accept a weekly schedule with a valid day", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule = config.Schedule{Interval: config.IntervalWeekly, Day: "friday"}
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should reject unknown days", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule = config.Schedule{Interval: config.IntervalWeekly, Day: "someday"}
			Expect(rules(Validate(cfg))).To(ContainElement("day-known"))
		})

		It("should warn when day is set on a non-weekly schedule", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule = config.Schedule{Interval: config.IntervalDaily, Day: "monday"}
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("day-weekly-only"))
			Expect(findings.HasErrors()).To(BeFalse())
		})

		It("should validate the time format", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule.Time = "25:00"
			Expect(rules(Validate(cfg))).To(ContainElement("time-format"))

			cfg.Updates[0].Schedule.Time = "09:30"
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should validate the timezone", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule.Time = "09:30"
			cfg.Updates[0].Schedule.Timezone = "Mars/Olympus"
			Expect(rules(Validate(cfg))).To(ContainElement("timezone-known"))

			cfg.Updates[0].Schedule.Timezone = "Asia/Shanghai"
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should warn on a timezone without a time", func() {
			cfg := validConfig()
			cfg.Updates[0].Schedule.Timezone = "UTC"
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("timezone-without-time"))
			Expect(findings.HasErrors()).To(BeFalse())
		})
	})

	Context("when checking grouping rules", func() {
		It("should reject groups that declare nothing", func() {
			cfg := validConfig()
			cfg.Updates[0].Groups = map[string]config.Group{"empty": {}}
			Expect(rules(Validate(cfg))).To(ContainElement("group-patterns-required"))
		})

		It("should accept groups with non-empty pattern lists", func() {
			cfg := validConfig()
			cfg.Updates[0].Groups = map[string]config.Group{
				"aws": {Patterns: []string{"github.com/aws/*"}},
			}
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should accept groups declared by update-types alone", func() {
			cfg := validConfig()
			cfg.Updates[0].Groups = map[string]config.Group{
				"low-risk": {UpdateTypes: []string{"minor", "patch"}},
			}
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should reject invalid patterns", func() {
			cfg := validConfig()
			cfg.Updates[0].Groups = map[string]config.Group{
				"bad": {Patterns: []string{"with space"}},
			}
			Expect(rules(Validate(cfg))).To(ContainElement("pattern-valid"))
		})

		It("should reject unknown applies-to values", func() {
			cfg := validConfig()
			cfg.Updates[0].Groups = map[string]config.Group{
				"g": {Patterns: []string{"*"}, AppliesTo: "everything"},
			}
			Expect(rules(Validate(cfg))).To(ContainElement("group-applies-to"))
		})

		It("should reject unknown update-types values", func() {
			cfg := validConfig()
			cfg.Updates[0].Groups = map[string]config.Group{
				"g": {Patterns: []string{"*"}, UpdateTypes: []string{"huge"}},
			}
			Expect(rules(Validate(cfg))).To(ContainElement("group-update-types"))
		})
	})

	Context("when checking commit messages", func() {
		It("should accept a conventional prefix", func() {
			cfg := validConfig()
			cfg.Updates[0].CommitMessage = &config.CommitMessage{Prefix: "chore(deps)"}
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should reject over-long prefixes", func() {
			cfg := validConfig()
			long := make([]byte, maxPrefixLength+1)
			for i := range long {
				long[i] = 'x'
			}
			cfg.Updates[0].CommitMessage = &config.CommitMessage{Prefix: string(long)}
			Expect(rules(Validate(cfg))).To(ContainElement("prefix-length"))
		})

		It("should reject prefixes with surrounding whitespace", func() {
			cfg := validConfig()
			cfg.Updates[0].CommitMessage = &config.CommitMessage{Prefix: "chore "}
			Expect(rules(Validate(cfg))).To(ContainElement("prefix-whitespace"))
		})

		It("should reject include values other than scope", func() {
			cfg := validConfig()
			cfg.Updates[0].CommitMessage = &config.CommitMessage{Include: "body"}
			Expect(rules(Validate(cfg))).To(ContainElement("commit-message-include"))
		})

		It("should warn on an empty commit-message block", func() {
			cfg := validConfig()
			cfg.Updates[0].CommitMessage = &config.CommitMessage{}
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("commit-message-empty"))
			Expect(findings.HasErrors()).To(BeFalse())
		})
	})

	Context("when checking ignore rules", func() {
		It("should require a dependency name", func() {
			cfg := validConfig()
			cfg.Updates[0].Ignore = []config.IgnoreRule{{}}
			Expect(rules(Validate(cfg))).To(ContainElement("ignore-dependency-name"))
		})

		It("should validate version constraints", func() {
			cfg := validConfig()
			cfg.Updates[0].Ignore = []config.IgnoreRule{{
				DependencyName: "golang.org/x/net",
				Versions:       []string{">= 2.0, < 3"},
			}}
			Expect(Validate(cfg)).To(BeEmpty())

			cfg.Updates[0].Ignore[0].Versions = []string{"not-a-constraint ~~"}
			Expect(rules(Validate(cfg))).To(ContainElement("ignore-versions"))
		})

		It("should validate update-types", func() {
			cfg := validConfig()
			cfg.Updates[0].Ignore = []config.IgnoreRule{{
				DependencyName: "*",
				UpdateTypes:    []string{"version-update:semver-major"},
			}}
			Expect(Validate(cfg)).To(BeEmpty())

			cfg.Updates[0].Ignore[0].UpdateTypes = []string{"semver-major"}
			Expect(rules(Validate(cfg))).To(ContainElement("ignore-update-types"))

			cfg.Updates[0].Ignore[0].UpdateTypes = []string{"version-update:semver-huge"}
			Expect(rules(Validate(cfg))).To(ContainElement("ignore-update-types"))
		})
	})

	Context("when checking allow rules and limits", func() {
		It("should reject empty allow rules", func() {
			cfg := validConfig()
			cfg.Updates[0].Allow = []config.AllowRule{{}}
			Expect(rules(Validate(cfg))).To(ContainElement("allow-empty"))
		})

		It("should reject negative open-pull-requests-limit", func() {
			cfg := validConfig()
			limit := -1
			cfg.Updates[0].OpenPullRequestsLimit = &limit
			Expect(rules(Validate(cfg))).To(ContainElement("pull-requests-limit"))
		})

		It("should accept a zero limit", func() {
			cfg := validConfig()
			limit := 0
			cfg.Updates[0].OpenPullRequestsLimit = &limit
			Expect(Validate(cfg)).To(BeEmpty())
		})

		It("should reject unknown strategies", func() {
			cfg := validConfig()
			cfg.Updates[0].RebaseStrategy = "manual"
			cfg.Updates[0].VersioningStrategy = "guess"
			ids := rules(Validate(cfg))
			Expect(ids).To(ContainElement("rebase-strategy"))
			Expect(ids).To(ContainElement("versioning-strategy"))
		})
	})

	Context("when checking registries", func() {
		It("should reject references to undeclared registries", func() {
			cfg := validConfig()
			cfg.Updates[0].Registries = []string{"ghcr"}
			Expect(rules(Validate(cfg))).To(ContainElement("registry-undeclared"))
		})

		It("should warn on unused registries", func() {
			cfg := validConfig()
			cfg.Registries = map[string]config.Registry{
				"ghcr": {Type: "docker-registry", URL: "https://ghcr.io"},
			}
			findings := Validate(cfg)
			Expect(rules(findings)).To(ContainElement("registry-unused"))
			Expect(findings.HasErrors()).To(BeFalse())
		})

		It("should require registry type and url", func() {
			cfg := validConfig()
			cfg.Registries = map[string]config.Registry{"broken": {}}
			cfg.Updates[0].Registries = []string{"broken"}
			ids := rules(Validate(cfg))
			Expect(ids).To(ContainElement("registry-type-required"))
			Expect(ids).To(ContainElement("registry-url-required"))
		})
	})
})
