// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package enrich looks up supplementary technology metadata from public
// sources (Wikipedia summaries, GitHub repository search). Enrichment is
// strictly best-effort: every failure degrades to a nil result, and nothing
// on the primary request path ever waits on it.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultLookupTimeout bounds a single external lookup.
const DefaultLookupTimeout = 10 * time.Second

const (
	defaultWikipediaBaseURL = "https://en.wikipedia.org"
	defaultGitHubBaseURL    = "https://api.github.com"
)

// Result is the metadata recovered for a technology name.
type Result struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartYear   int      `json:"startYear,omitempty"`
	Sources     []string `json:"sources"`
}

// Client queries external sources for technology metadata.
//
// # Thread Safety
//
// Client is safe for concurrent use.
type Client struct {
	wikipediaBaseURL string
	githubBaseURL    string
	httpClient       *http.Client
	logger           *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the external endpoints, used by tests.
func WithBaseURLs(wikipedia, github string) Option {
	return func(c *Client) {
		c.wikipediaBaseURL = wikipedia
		c.githubBaseURL = github
	}
}

// WithTimeout sets a custom lookup timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates an enrichment client.
func NewClient(logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		wikipediaBaseURL: defaultWikipediaBaseURL,
		githubBaseURL:    defaultGitHubBaseURL,
		httpClient:       &http.Client{Timeout: DefaultLookupTimeout},
		logger:           logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type wikipediaSummary struct {
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

type githubSearchResponse struct {
	Items []struct {
		Description string    `json:"description"`
		HTMLURL     string    `json:"html_url"`
		CreatedAt   time.Time `json:"created_at"`
	} `json:"items"`
}

// Lookup fetches metadata for a technology name.
//
// # Description
//
// Tries the Wikipedia page-summary endpoint first; on any failure (network,
// non-200, empty extract) it falls back to a GitHub repository search ranked
// by stars. All errors are swallowed: the return is nil when neither source
// yields anything, and the caller proceeds without enrichment.
//
// # Inputs
//
//   - ctx: Deadline/cancellation for both lookups.
//   - name: Technology display name.
//
// # Outputs
//
//   - *Result: Recovered metadata, or nil.
func (c *Client) Lookup(ctx context.Context, name string) *Result {
	if r := c.lookupWikipedia(ctx, name); r != nil {
		return r
	}
	return c.lookupGitHub(ctx, name)
}

func (c *Client) lookupWikipedia(ctx context.Context, name string) *Result {
	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s",
		c.wikipediaBaseURL, url.PathEscape(name))

	var summary wikipediaSummary
	if !c.getJSON(ctx, endpoint, &summary) {
		return nil
	}
	if summary.Extract == "" {
		return nil
	}
	return &Result{
		Name:        name,
		Description: summary.Extract,
		Sources:     []string{"Wikipedia: " + summary.ContentURLs.Desktop.Page},
	}
}

func (c *Client) lookupGitHub(ctx context.Context, name string) *Result {
	endpoint := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc&per_page=1",
		c.githubBaseURL, url.QueryEscape(name))

	var search githubSearchResponse
	if !c.getJSON(ctx, endpoint, &search) {
		return nil
	}
	if len(search.Items) == 0 {
		return nil
	}
	repo := search.Items[0]
	description := repo.Description
	if description == "" {
		description = name + " - популярная технология"
	}
	return &Result{
		Name:        name,
		Description: description,
		StartYear:   repo.CreatedAt.Year(),
		Sources:     []string{"GitHub: " + repo.HTMLURL},
	}
}

// getJSON fetches and decodes an endpoint, reporting success. Failures log
// at debug level only; enrichment misses are routine.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Debug("enrichment request build failed", "url", endpoint, "error", err)
		return false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("enrichment lookup failed", "url", endpoint, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("enrichment lookup non-200", "url", endpoint, "status", resp.StatusCode)
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Debug("enrichment decode failed", "url", endpoint, "error", err)
		return false
	}
	return true
}
