package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Release is the newest entry of the remote release feed. Only the tag
// and the first asset's download location are read; nothing else from
// the feed is persisted.
type Release struct {
	TagName     string
	DownloadURL string
}

// Fetcher is the interface for release feed access.
type Fetcher interface {
	// FetchLatest returns the newest release of owner/repo.
	FetchLatest(ctx context.Context, owner, repo string) (*Release, error)
}

// GitHubClient is the default fetcher implementation backed by the
// GitHub releases API.
type GitHubClient struct {
	BaseURL string
	Timeout time.Duration
}

// NewGitHubClient creates a fetcher with a bounded request timeout.
// Launcher hosts discard slow responses, so the default is short.
func NewGitHubClient() *GitHubClient {
	return &GitHubClient{
		BaseURL: "https://api.github.com",
		Timeout: 10 * time.Second,
	}
}

// releaseEntry mirrors the fields read from the GitHub releases payload.
type releaseEntry struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// FetchLatest queries the release list, ordered newest-first, and reads
// the first entry's tag and first asset.
func (c *GitHubClient) FetchLatest(ctx context.Context, owner, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases", c.BaseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	var releases []releaseEntry
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, &ParseError{Field: "releases", Err: err}
	}
	if len(releases) == 0 {
		return nil, &ParseError{Field: "releases", Err: errors.New("empty release list")}
	}

	latest := releases[0]
	if latest.TagName == "" {
		return nil, &ParseError{Field: "tag_name", Err: errors.New("missing tag")}
	}
	if len(latest.Assets) == 0 {
		return nil, &ParseError{Field: "assets", Err: errors.New("release has no assets")}
	}

	return &Release{
		TagName:     latest.TagName,
		DownloadURL: latest.Assets[0].BrowserDownloadURL,
	}, nil
}
