package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YANHAN-BLCU/reporank/internal/domain"
)

// setupTestGateway creates a GitHubGateway that communicates with a mock HTTP server.
func setupTestGateway(t *testing.T, timeout time.Duration, handler http.Handler) (*GitHubGateway, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := NewGitHubGateway(timeout, server.URL, log.New(io.Discard))
	require.NoError(t, err)

	return gateway, server
}

func strPtr(s string) *string { return &s }

func TestGitHubGateway_FetchRepositories(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expected       []domain.Repository
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "happy path - forks are dropped and fields are mapped",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.URL.Path, "/users/any-user/repos")
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `[
					{"name":"b","stargazers_count":50,"description":null,"html_url":"u1","fork":false},
					{"name":"a","stargazers_count":50,"description":"d","html_url":"u2","fork":false},
					{"name":"c","stargazers_count":200,"description":"x","html_url":"u3","fork":true}
				]`)
			},
			expected: []domain.Repository{
				{Name: "b", Stars: 50, Description: nil, URL: "u1"},
				{Name: "a", Stars: 50, Description: strPtr("d"), URL: "u2"},
			},
			expectError: false,
		},
		{
			name: "empty case - user has no repositories",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `[]`)
			},
			expected:    []domain.Repository{},
			expectError: false,
		},
		{
			name: "error case - GitHub API returns an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to list repositories",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, _ := setupTestGateway(t, 5*time.Second, http.HandlerFunc(tc.handlerFunc))

			repos, err := gateway.FetchRepositories(context.Background(), "any-user")

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				assert.Nil(t, repos)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, repos)
			}
		})
	}
}

func TestGitHubGateway_FetchRepositories_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `[]`)
	})
	gateway, _ := setupTestGateway(t, 20*time.Millisecond, handler)

	repos, err := gateway.FetchRepositories(context.Background(), "any-user")

	assert.Error(t, err)
	assert.Nil(t, repos)
}

func TestNewGitHubGateway_InvalidBaseURL(t *testing.T) {
	_, err := NewGitHubGateway(5*time.Second, "://not-a-url", log.New(io.Discard))
	assert.Error(t, err)
}
