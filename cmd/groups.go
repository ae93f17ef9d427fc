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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
	"github.com/AlaudaDevops/toolbox/depconfig/pkg/group"
)

var (
	// groupsDir is the project directory whose document is previewed
	groupsDir string
	// groupsFile is an explicit document path, overriding discovery
	groupsFile string
	// groupsDeps are the dependency names to bucket
	groupsDeps []string
	// groupsEcosystem restricts the preview to one ecosystem's entry
	groupsEcosystem string
)

// groupsCmd previews how grouping rules bucket dependency names
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Preview how grouping rules bucket dependencies",
	Long: `Groups shows which named bucket each dependency lands in under the
grouping rules of every update entry. Dependencies no rule claims are listed
as ungrouped; each of those would get its own change proposal.

Example:
  depconfig groups --deps golang.org/x/net,github.com/aws/aws-sdk-go-v2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGroups()
	},
}

func init() {
	groupsCmd.Flags().StringVar(&groupsDir, "dir", ".", "path to the project directory")
	groupsCmd.Flags().StringVar(&groupsFile, "file", "", "explicit path of the configuration document")
	groupsCmd.Flags().StringSliceVar(&groupsDeps, "deps", nil, "dependency names to bucket")
	groupsCmd.Flags().StringVar(&groupsEcosystem, "ecosystem", "", "only preview the entry for this ecosystem")
	groupsCmd.MarkFlagRequired("deps")

	rootCmd.AddCommand(groupsCmd)
}

func runGroups() error {
	loader := config.NewLenientLoader()

	var cfg *config.Config
	var err error
	if groupsFile != "" {
		cfg, err = loader.LoadFile(groupsFile)
	} else {
		cfg, err = loader.LoadProject(groupsDir)
	}
	if err != nil {
		return err
	}

	entries := make([]*config.Update, 0, len(cfg.Updates))
	if groupsEcosystem != "" {
		entry := cfg.EntryForEcosystem(config.Ecosystem(groupsEcosystem))
		if entry == nil {
			return fmt.Errorf("no update entry for ecosystem %q", groupsEcosystem)
		}
		entries = append(entries, entry)
	} else {
		for i := range cfg.Updates {
			entries = append(entries, &cfg.Updates[i])
		}
	}

	for _, update := range entries {
		if err := printEntryGroups(update); err != nil {
			return err
		}
	}
	return nil
}

// printEntryGroups previews the bucketing of one update entry
func printEntryGroups(update *config.Update) error {
	fmt.Printf("%s %s:\n", update.PackageEcosystem, strings.Join(update.ScopeDirectories(), ","))

	if !update.HasGroups() {
		fmt.Println("  (no grouping rules: every dependency gets its own proposal)")
		return nil
	}

	bucketer, err := group.NewBucketer(update.Groups)
	if err != nil {
		return fmt.Errorf("%s: %w", update.PackageEcosystem, err)
	}

	buckets := bucketer.BucketAll(groupsDeps)
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		if name != group.Ungrouped {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("  %s: %s\n", name, strings.Join(buckets[name], ", "))
	}
	if ungrouped := buckets[group.Ungrouped]; len(ungrouped) > 0 {
		fmt.Printf("  (ungrouped): %s\n", strings.Join(ungrouped, ", "))
	}
	return nil
}
