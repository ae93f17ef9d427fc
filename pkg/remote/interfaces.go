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

// Package remote retrieves Dependabot configuration documents from hosted
// repositories without cloning them.
package remote

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoConfig is returned when the remote repository has no dependabot
// configuration file.
var ErrNoConfig = errors.New("remote repository has no dependabot configuration")

// configRelPaths are the candidate document paths probed on the remote,
// in priority order.
var configRelPaths = []string{
	".github/dependabot.yml",
	".github/dependabot.yaml",
}

// ProviderConfig describes how to reach a git provider
type ProviderConfig struct {
	// Provider is the type of git provider (e.g. "github", "gitlab")
	Provider string `yaml:"provider" json:"provider"`
	// BaseURL is the base API URL of the git provider
	BaseURL string `yaml:"baseURL" json:"baseURL"`
	// Token is the authentication token for the git provider
	Token string `yaml:"token" json:"token"`
}

// Fetcher retrieves a repository's configuration document
type Fetcher interface {
	// FetchConfig returns the raw bytes of the repository's dependabot
	// configuration on the given ref (empty ref means the default branch)
	FetchConfig(ctx context.Context, repo *Repository, ref string) ([]byte, error)

	// GetPlatformType returns the type of platform (github, gitlab, etc.)
	GetPlatformType() string
}

// NewFetcher creates a new Fetcher based on the git provider configuration
func NewFetcher(provider ProviderConfig) (Fetcher, error) {
	switch provider.Provider {
	case "github", "":
		return NewGitHubFetcher(provider.BaseURL, provider.Token)
	case "gitlab":
		return NewGitLabFetcher(provider.BaseURL, provider.Token)
	default:
		return nil, fmt.Errorf("unsupported platform type: %s", provider.Provider)
	}
}
