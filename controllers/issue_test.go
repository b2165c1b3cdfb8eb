package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"journal-website-api/models"
)

func TestGetCurrentIssueNone(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	// An unpublished issue must not count.
	unpublished := models.Issue{Volume: 1, Issue: 1, PublishDate: time.Now()}
	if err := db.Create(&unpublished).Error; err != nil {
		t.Fatalf("failed to create issue: %v", err)
	}

	w := performRequest(router, "/api/current-issue")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "No published issue found" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestGetCurrentIssuePicksNewestPublished(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	now := time.Now()
	old := models.Issue{Volume: 4, Issue: 2, IsPublished: true, PublishDate: now.Add(-90 * 24 * time.Hour)}
	current := models.Issue{Volume: 5, Issue: 3, IsPublished: true, PublishDate: now.Add(-10 * 24 * time.Hour)}
	for _, i := range []*models.Issue{&old, &current} {
		if err := db.Create(i).Error; err != nil {
			t.Fatalf("failed to create issue: %v", err)
		}
	}

	w := performRequest(router, "/api/current-issue")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.IssueResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Volume != 5 || resp.Issue != 3 {
		t.Fatalf("expected issue 5(3), got %d(%d)", resp.Volume, resp.Issue)
	}
	if resp.Articles == nil {
		t.Fatal("expected articles to be an empty array, not null")
	}
}

func TestGetCurrentIssueExpandsAuthors(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	issue := models.Issue{Volume: 5, Issue: 3, IsPublished: true, PublishDate: time.Now()}
	if err := db.Create(&issue).Error; err != nil {
		t.Fatalf("failed to create issue: %v", err)
	}

	article := models.Article{
		Title:       "Issue article",
		Status:      models.ArticleStatusPublished,
		ArticleType: models.ArticleTypeResearch,
		IssueID:     &issue.ID,
	}
	if err := db.Create(&article).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	lead := models.Author{Name: "Lead Author", Email: "lead@example.org", Country: "United States"}
	co := models.Author{Name: "Co Author", Country: "United Kingdom"}
	for _, a := range []*models.Author{&lead, &co} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("failed to create author: %v", err)
		}
	}

	links := []models.ArticleAuthor{
		{ArticleID: article.ID, AuthorID: co.ID, AuthorOrder: 2},
		{ArticleID: article.ID, AuthorID: lead.ID, AuthorOrder: 1, IsCorresponding: true},
	}
	for i := range links {
		if err := db.Create(&links[i]).Error; err != nil {
			t.Fatalf("failed to link author: %v", err)
		}
	}

	w := performRequest(router, "/api/current-issue")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.IssueResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(resp.Articles))
	}

	authors := resp.Articles[0].Authors
	if len(authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(authors))
	}
	if authors[0].Name != "Lead Author" || authors[0].Order != 1 || !authors[0].IsCorresponding {
		t.Fatalf("expected corresponding lead author first, got %+v", authors[0])
	}
	if authors[1].Name != "Co Author" || authors[1].Order != 2 {
		t.Fatalf("expected co-author second, got %+v", authors[1])
	}
}
