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

package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v58/github"
	"github.com/sirupsen/logrus"
)

// GitHubFetcher implements Fetcher for GitHub using the GitHub SDK
type GitHubFetcher struct {
	// client is the GitHub API client
	client *github.Client
}

// NewGitHubFetcher creates a new GitHub configuration fetcher
func NewGitHubFetcher(baseURL, token string) (*GitHubFetcher, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if baseURL != "" && baseURL != "https://api.github.com" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to set enterprise URLs: %w", err)
		}
	}

	return &GitHubFetcher{client: client}, nil
}

// GetPlatformType returns the type of platform
func (g *GitHubFetcher) GetPlatformType() string {
	return "github"
}

// FetchConfig downloads the repository's dependabot configuration document
func (g *GitHubFetcher) FetchConfig(ctx context.Context, repo *Repository, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}

	for _, relPath := range configRelPaths {
		content, _, resp, err := g.client.Repositories.GetContents(ctx, repo.Group, repo.Repo, relPath, opts)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				logrus.Debugf("No %s in %s", relPath, repo)
				continue
			}
			return nil, fmt.Errorf("failed to fetch %s from %s: %w", relPath, repo, err)
		}

		raw, err := content.GetContent()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s from %s: %w", relPath, repo, err)
		}
		logrus.Debugf("Fetched %s from %s", relPath, repo)
		return []byte(raw), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoConfig, repo)
}
