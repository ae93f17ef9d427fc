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
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

var (
	// fmtDir is the project directory whose document is normalized
	fmtDir string
	// fmtFile is an explicit document path, overriding discovery
	fmtFile string
	// fmtWrite rewrites the document in place
	fmtWrite bool
	// fmtCheck exits non-zero when the document is not canonical
	fmtCheck bool
)

// fmtCmd normalizes a configuration document to canonical form
var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Normalize a dependabot configuration document",
	Long: `Fmt parses a configuration document, applies schema defaults and
re-renders it in canonical form: stable field order, two-space indentation
and explicit scope directories.

The result is printed to stdout, written back in place with -w (atomically,
so an interrupted run never truncates the document), or only checked with
--check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFmt()
	},
}

func init() {
	fmtCmd.Flags().StringVar(&fmtDir, "dir", ".", "path to the project directory")
	fmtCmd.Flags().StringVar(&fmtFile, "file", "", "explicit path of the configuration document")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the document in place")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit 1 when the document is not canonical")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt() error {
	loader := config.NewLenientLoader()

	configPath := fmtFile
	if configPath == "" {
		located, err := loader.Locate(fmtDir)
		if err != nil {
			return err
		}
		configPath = located
	}

	original, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg, err := loader.Parse(original)
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	config.ApplyDefaults(cfg)

	canonical, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	changed := !bytes.Equal(original, canonical)

	switch {
	case fmtCheck:
		if changed {
			return fmt.Errorf("%s is not in canonical form", configPath)
		}
		logrus.Infof("%s is already canonical", configPath)
	case fmtWrite:
		if !changed {
			logrus.Debugf("%s already canonical, nothing to do", configPath)
			return nil
		}
		if err := config.WriteFile(configPath, cfg); err != nil {
			return err
		}
		logrus.Infof("✅ Rewrote %s", configPath)
	default:
		fmt.Print(string(canonical))
	}
	return nil
}
