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
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/remote"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/validate"
)

var (
	// lintDir is the local project directory to lint
	lintDir string
	// lintFile is an explicit document path, overriding discovery
	lintFile string
	// lintRepo is a remote repository URL to lint instead of a local project
	lintRepo string
	// lintRef is the remote ref to read the document from
	lintRef string
	// lintFormat selects the output format (text or json)
	lintFormat string
	// lintLenient disables unknown-field rejection during parsing
	lintLenient bool
)

// lintCmd validates a configuration document against the version-2 schema
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate a dependabot configuration document",
	Long: `Lint validates a dependabot configuration document against the
version-2 schema: known ecosystem identifiers, enumerated schedule cadences,
well-formed grouping rules and commit-message prefixes.

The document is located in --dir (.github/dependabot.yml or .yaml), read
from an explicit --file, or fetched from a remote --repo without cloning.

Exit status is 1 when the document has errors; warnings alone exit 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd.Context())
	},
}

func init() {
	lintCmd.Flags().StringVar(&lintDir, "dir", ".", "path to the project directory")
	lintCmd.Flags().StringVar(&lintFile, "file", "", "explicit path of the configuration document")
	lintCmd.Flags().StringVar(&lintRepo, "repo", "", "remote repository URL to lint (alternative to dir)")
	lintCmd.Flags().StringVar(&lintRef, "ref", "", "remote ref to read the document from (default: default branch)")
	lintCmd.Flags().StringVar(&lintFormat, "format", "text", "output format (text or json)")
	lintCmd.Flags().BoolVar(&lintLenient, "lenient", false, "ignore unknown document fields")
	lintCmd.Flags().String("git.provider", "github", "Git provider type (e.g., github, gitlab)")
	lintCmd.Flags().String("git.token", "", "Access token for the Git provider")
	lintCmd.Flags().String("git.baseUrl", "", "Base API URL of the Git provider")
	viper.BindPFlags(lintCmd.Flags())

	rootCmd.AddCommand(lintCmd)
}

// runLint loads the document from the requested source and reports findings
func runLint(ctx context.Context) error {
	cfg, err := loadLintTarget(ctx)
	if err != nil {
		return err
	}

	findings := validate.Validate(cfg)
	if err := printFindings(findings); err != nil {
		return err
	}

	if findings.HasErrors() {
		return fmt.Errorf("%s", findings.Summary())
	}
	logrus.Info(findings.Summary())
	return nil
}

func loadLintTarget(ctx context.Context) (*config.Config, error) {
	loader := config.NewLoader()
	if lintLenient {
		loader = config.NewLenientLoader()
	}

	switch {
	case lintRepo != "" && lintFile != "":
		return nil, fmt.Errorf("cannot specify both --repo and --file")
	case lintRepo != "":
		repo, err := remote.ParseRepoURL(lintRepo)
		if err != nil {
			return nil, fmt.Errorf("failed to parse repository URL: %w", err)
		}

		fetcher, err := remote.NewFetcher(remote.ProviderConfig{
			Provider: viper.GetString("git.provider"),
			BaseURL:  viper.GetString("git.baseUrl"),
			Token:    viper.GetString("git.token"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize fetcher: %w", err)
		}

		logrus.Infof("Fetching configuration from %s", repo)
		data, err := fetcher.FetchConfig(ctx, repo, lintRef)
		if err != nil {
			return nil, err
		}
		return loader.Parse(data)
	case lintFile != "":
		return loader.LoadFile(lintFile)
	default:
		return loader.LoadProject(lintDir)
	}
}

func printFindings(findings validate.Findings) error {
	if lintFormat == "json" {
		data, err := json.MarshalIndent(findings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal findings: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, finding := range findings {
		fmt.Println(finding.String())
	}
	return nil
}
