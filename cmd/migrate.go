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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/legacy"
)

var (
	// migrateOut is the path the migrated document is written to
	migrateOut string
)

// migrateCmd converts a legacy DependaBot configuration to a v2 document
var migrateCmd = &cobra.Command{
	Use:   "migrate <legacy-config>",
	Short: "Migrate a legacy DependaBot configuration to the v2 schema",
	Long: `Migrate reads a legacy DependaBot configuration file (repo/pr
sections) and converts it to a version-2 dependabot.yml document.

The result is printed to stdout, or written to --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(args[0])
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateOut, "out", "", "path to write the migrated document to")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(legacyPath string) error {
	legacyCfg, err := legacy.Load(legacyPath)
	if err != nil {
		return err
	}

	cfg := legacy.Migrate(legacyCfg)

	if migrateOut == "" {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	if err := config.WriteFile(migrateOut, cfg); err != nil {
		return err
	}
	logrus.Infof("✅ Wrote %s", migrateOut)
	return nil
}
