// web/client.go
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"journal-website-api/models"
)

// Client fetches JSON from the sibling read API. Pages go through HTTP
// rather than the database so they see exactly what external consumers see.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Journal(ctx context.Context) (*models.JournalResponse, error) {
	var journal models.JournalResponse
	if err := c.getJSON(ctx, "/api/journal", &journal); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (c *Client) LatestArticles(ctx context.Context) ([]models.ArticleSummary, error) {
	var articles []models.ArticleSummary
	if err := c.getJSON(ctx, "/api/articles/latest", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) CurrentIssue(ctx context.Context) (*models.IssueResponse, error) {
	var issue models.IssueResponse
	if err := c.getJSON(ctx, "/api/current-issue", &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (c *Client) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := c.getJSON(ctx, "/api/announcements", &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// CallForPapers returns (nil, nil) when the endpoint reports no open call,
// which it does with a JSON null body.
func (c *Client) CallForPapers(ctx context.Context) (*models.CallForPapersResponse, error) {
	var cfp *models.CallForPapersResponse
	if err := c.getJSON(ctx, "/api/call-for-papers", &cfp); err != nil {
		return nil, err
	}
	return cfp, nil
}

func (c *Client) SpecialIssues(ctx context.Context) ([]models.SpecialIssue, error) {
	var specialIssues []models.SpecialIssue
	if err := c.getJSON(ctx, "/api/special-issues", &specialIssues); err != nil {
		return nil, err
	}
	return specialIssues, nil
}

func (c *Client) Indexing(ctx context.Context) ([]models.Indexing, error) {
	var indexing []models.Indexing
	if err := c.getJSON(ctx, "/api/indexing", &indexing); err != nil {
		return nil, err
	}
	return indexing, nil
}

func (c *Client) EditorialBoard(ctx context.Context) (map[string][]models.BoardMember, error) {
	var board map[string][]models.BoardMember
	if err := c.getJSON(ctx, "/api/editorial-board", &board); err != nil {
		return nil, err
	}
	return board, nil
}
