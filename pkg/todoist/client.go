package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"todoist-export/pkg/log"
)

// UpstreamError is any non-success response or transport fault from the
// Todoist API. It carries the upstream status and body when a response
// was received, and wraps the transport error otherwise.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("todoist API request failed: %v", e.Err)
	}
	return fmt.Sprintf("todoist API error %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes the transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client is the HTTP wrapper for the Todoist Sync API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	l          log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger injects the tracing policy: when set, every upstream
// request and response status is logged at debug level.
func WithLogger(l log.Logger) Option {
	return func(c *Client) { c.l = l }
}

// NewClient creates a new Todoist Sync API client.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSnapshot issues one bulk sync call requesting all resource types
// with a full-history sync token and returns the decoded snapshot.
func (c *Client) FetchSnapshot(ctx context.Context, token string) (*Snapshot, error) {
	form := url.Values{}
	form.Set("sync_token", "*")
	form.Set("resource_types", `["items","projects","collaborators","user"]`)

	var snapshot Snapshot
	if err := c.postForm(ctx, syncPath, token, form, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// FetchCompletedPage fetches one page of completed tasks, capped at
// CompletedPageSize results. It never fails: any upstream fault is
// logged and degrades to an empty page with no cursor, so the caller
// keeps whatever pages it already has instead of losing the export.
func (c *Client) FetchCompletedPage(ctx context.Context, token, cursor string) CompletedPage {
	form := url.Values{}
	form.Set("limit", strconv.Itoa(CompletedPageSize))
	if cursor != "" {
		form.Set("cursor", cursor)
	}

	var page CompletedPage
	if err := c.postForm(ctx, completedPath, token, form, &page); err != nil {
		if c.l != nil {
			c.l.Warnf(ctx, "completed-task page fetch failed, stopping pagination: %v", err)
		}
		return CompletedPage{}
	}
	return page
}

// FetchAllCompleted follows the completed-task cursor chain until it
// runs out, concatenating pages in server order. The loop terminates
// because every iteration either returns an empty cursor (including the
// degraded empty page after a fault) or advances to the next page.
func (c *Client) FetchAllCompleted(ctx context.Context, token string) []*Item {
	var all []*Item
	cursor := ""
	for {
		page := c.FetchCompletedPage(ctx, token, cursor)
		all = append(all, page.Results...)
		if page.NextCursor == "" {
			return all
		}
		cursor = page.NextCursor
	}
}

// postForm issues a bearer-authenticated form POST and decodes the JSON
// response into out. Non-2xx responses and transport faults come back
// as *UpstreamError.
func (c *Client) postForm(ctx context.Context, path, token string, form url.Values, out any) error {
	endpoint := c.baseURL + path

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build todoist request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	if c.l != nil {
		c.l.Debugf(ctx, "todoist: POST %s", endpoint)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if c.l != nil {
		c.l.Debugf(ctx, "todoist: POST %s -> %d", endpoint, resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode todoist response: %w", err)
	}
	return nil
}
