// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"

	"github.com/YANHAN-BLCU/reporank/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching repository
// information from GitHub.
type Fetcher interface {
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
// It performs a single unauthenticated request per call; forks are dropped
// before results leave this package.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway creates a gateway whose requests fail after the given
// timeout. baseURL overrides the API endpoint when non-empty; go-github
// requires it to carry a trailing slash.
func NewGitHubGateway(timeout time.Duration, baseURL string, logger *log.Logger) (*GitHubGateway, error) {
	httpClient := &http.Client{Timeout: timeout}
	client := github.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
		}
		client.BaseURL = parsed
	}

	return &GitHubGateway{
		client: client,
		logger: logger,
	}, nil
}

// FetchRepositories lists the user's repositories and returns one record per
// non-fork entry. Transport failures, timeouts and non-2xx responses all
// surface as a single wrapped error.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Debug("Fetching repositories", "user", username)

	repos, _, err := g.client.Repositories.ListByUser(ctx, username, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}

	records := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.GetFork() {
			continue
		}
		records = append(records, domain.Repository{
			Name:        repo.GetName(),
			Stars:       repo.GetStargazersCount(),
			Description: repo.Description,
			URL:         repo.GetHTMLURL(),
		})
	}

	g.logger.Debug("Completed fetching repositories",
		"total", len(repos), "non_forks", len(records))
	return records, nil
}
