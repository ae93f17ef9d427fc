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

	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// GitLabFetcher implements Fetcher for GitLab
type GitLabFetcher struct {
	client *gitlab.Client
}

// NewGitLabFetcher creates a new GitLab configuration fetcher
func NewGitLabFetcher(baseURL, token string) (*GitLabFetcher, error) {
	var opts []gitlab.ClientOptionFunc
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &GitLabFetcher{client: client}, nil
}

// GetPlatformType returns the type of platform
func (g *GitLabFetcher) GetPlatformType() string {
	return "gitlab"
}

// FetchConfig downloads the repository's dependabot configuration document
func (g *GitLabFetcher) FetchConfig(ctx context.Context, repo *Repository, ref string) ([]byte, error) {
	project, _, err := g.client.Projects.GetProject(repo.String(), nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", repo, err)
	}

	if ref == "" {
		ref = project.DefaultBranch
	}

	for _, relPath := range configRelPaths {
		raw, resp, err := g.client.RepositoryFiles.GetRawFile(project.ID, relPath,
			&gitlab.GetRawFileOptions{Ref: gitlab.Ptr(ref)}, gitlab.WithContext(ctx))
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				logrus.Debugf("No %s in %s", relPath, repo)
				continue
			}
			return nil, fmt.Errorf("failed to fetch %s from %s: %w", relPath, repo, err)
		}
		logrus.Debugf("Fetched %s from %s", relPath, repo)
		return raw, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoConfig, repo)
}
