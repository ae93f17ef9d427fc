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

// Package generate detects the package ecosystems present in a project tree
// and emits a matching Dependabot configuration document.
package generate

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AlaudaDevops/toolbox/depconfig/pkg/config"
)

// manifestEcosystems maps well-known manifest file names to their ecosystem
var manifestEcosystems = map[string]config.Ecosystem{
	"go.mod":           config.EcosystemGoMod,
	"Dockerfile":       config.EcosystemDocker,
	"Containerfile":    config.EcosystemDocker,
	"requirements.txt": config.EcosystemPip,
	"pyproject.toml":   config.EcosystemPip,
	"Pipfile":          config.EcosystemPip,
	"package.json":     config.EcosystemNpm,
	"Gemfile":          config.EcosystemBundler,
	"Cargo.toml":       config.EcosystemCargo,
	"composer.json":    config.EcosystemComposer,
	"build.gradle":     config.EcosystemGradle,
	"build.gradle.kts": config.EcosystemGradle,
	"pom.xml":          config.EcosystemMaven,
	"packages.config":  config.EcosystemNuGet,
	"Chart.yaml":       config.EcosystemHelm,
	".gitmodules":      config.EcosystemGitSubmodule,
}

// skippedDirs are directory names never scanned for manifests
var skippedDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// workflowsDir is the directory holding GitHub Actions workflow files
var workflowsDir = filepath.Join(".github", "workflows")

// DetectEcosystems walks the project tree and returns the scope directories
// of each ecosystem found, as "/"-rooted paths relative to projectPath.
func DetectEcosystems(projectPath string) (map[config.Ecosystem][]string, error) {
	detected := make(map[config.Ecosystem]map[string]bool)

	mark := func(eco config.Ecosystem, dir string) {
		if detected[eco] == nil {
			detected[eco] = make(map[string]bool)
		}
		detected[eco][dir] = true
	}

	err := filepath.WalkDir(projectPath, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(projectPath, fullPath)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skippedDirs[d.Name()] && rel != "." {
				return filepath.SkipDir
			}
			return nil
		}

		// Workflow files indicate the CI-action ecosystem, always scoped
		// at the repository root
		if filepath.Dir(rel) == workflowsDir && isYAML(d.Name()) {
			mark(config.EcosystemGitHubActions, "/")
			return nil
		}

		if eco, ok := manifestEcosystems[d.Name()]; ok {
			mark(eco, scopeDir(rel))
			return nil
		}

		if strings.HasSuffix(d.Name(), ".tf") {
			mark(config.EcosystemTerraform, scopeDir(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make(map[config.Ecosystem][]string, len(detected))
	for eco, dirs := range detected {
		for dir := range dirs {
			result[eco] = append(result[eco], dir)
		}
		sort.Strings(result[eco])
		logrus.Debugf("Detected %s manifests in %v", eco, result[eco])
	}
	return result, nil
}

// scopeDir converts a manifest's relative path to its "/"-rooted scope directory
func scopeDir(rel string) string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return "/"
	}
	return "/" + dir
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}
