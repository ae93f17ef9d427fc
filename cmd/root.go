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

// Package cmd provides command line interface for the depconfig application
package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by the CLI
const EnvPrefix = "DEPCONFIG"

var (
	// debug enables debug log output
	debug bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depconfig",
	Short: "Dependabot configuration toolkit",
	Long: `depconfig is a toolkit for .github/dependabot.yml configuration documents.

It validates documents against the version-2 schema, generates a starting
configuration from the ecosystems found in a project tree, normalizes
documents to canonical form, previews grouping rules and migrates legacy
DependaBot configuration.

Example usage:
  # Lint the configuration of a local project
  depconfig lint --dir /path/to/project

  # Lint the configuration of a remote repository
  depconfig lint --repo https://github.com/user/repo

  # Generate a configuration from the ecosystems in a project tree
  depconfig init --dir /path/to/project -w

  # Normalize a document in place
  depconfig fmt --dir /path/to/project -w

  # Preview which group each dependency lands in
  depconfig groups --dir /path/to/project --deps golang.org/x/net,github.com/aws/aws-sdk-go`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug log output")

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		if debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.Debug("Debug logging enabled")
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	})
}
