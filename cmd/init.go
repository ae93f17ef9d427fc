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

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/generate"
)

var (
	// initDir is the project directory to scan for ecosystems
	initDir string
	// initInterval is the schedule interval of generated entries
	initInterval string
	// initDay is the check day for weekly schedules
	initDay string
	// initLabels are attached to every generated entry
	initLabels []string
	// initAssignees are attached to every generated entry
	initAssignees []string
	// initWrite writes the document to .github/dependabot.yml instead of stdout
	initWrite bool
)

// initCmd generates a configuration document from a project tree
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a dependabot configuration from a project tree",
	Long: `Init walks the project tree, detects the package ecosystems present
(go.mod, Dockerfile, workflow files, requirements.txt, package.json, ...)
and generates one update entry per ecosystem and scope directory, each with
a weekly schedule and a conventional commit-message prefix.

The document is printed to stdout, or written to .github/dependabot.yml
with -w.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "path to the project directory")
	initCmd.Flags().StringVar(&initInterval, "interval", "weekly", "schedule interval for generated entries")
	initCmd.Flags().StringVar(&initDay, "day", "", "check day for weekly schedules")
	initCmd.Flags().StringSliceVar(&initLabels, "labels", nil, "labels to add to generated entries")
	initCmd.Flags().StringSliceVar(&initAssignees, "assignees", nil, "assignees to add to generated entries")
	initCmd.Flags().BoolVarP(&initWrite, "write", "w", false, "write the document to .github/dependabot.yml")

	rootCmd.AddCommand(initCmd)
}

func runInit() error {
	cfg, err := generate.Generate(initDir, generate.Options{
		Interval:  config.Interval(initInterval),
		Day:       initDay,
		Labels:    initLabels,
		Assignees: initAssignees,
	})
	if err != nil {
		return err
	}

	if !initWrite {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	target := filepath.Join(initDir, ".github", "dependabot.yml")
	if err := config.WriteFile(target, cfg); err != nil {
		return err
	}
	logrus.Infof("✅ Wrote %s", target)
	return nil
}
