package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"journal-website-api/models"
)

func TestGetCallForPapersNone(t *testing.T) {
	newTestDB(t)
	router := newTestRouter()

	w := performRequest(router, "/api/call-for-papers")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "null" {
		t.Fatalf("expected null body, got %s", got)
	}
}

func TestGetCallForPapersExpiredIsNull(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	past := time.Now().Add(-24 * time.Hour)
	cfp := models.CallForPapers{Title: "Closed call", Deadline: &past, IsActive: true}
	if err := db.Create(&cfp).Error; err != nil {
		t.Fatalf("failed to create call: %v", err)
	}

	w := performRequest(router, "/api/call-for-papers")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "null" {
		t.Fatalf("expected null body for expired call, got %s", got)
	}
}

func TestGetCallForPapersPicksNewest(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	now := time.Now()
	future := now.Add(30 * 24 * time.Hour)

	older := models.CallForPapers{
		Title:     "Older call",
		Deadline:  &future,
		Themes:    "one, two",
		IsActive:  true,
		CreatedAt: now.Add(-2 * time.Hour),
	}
	newer := models.CallForPapers{
		Title:     "Newer call",
		Deadline:  &future,
		Themes:    `["Alpha","Beta","Gamma"]`,
		IsActive:  true,
		CreatedAt: now,
	}
	for _, c := range []*models.CallForPapers{&older, &newer} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("failed to create call: %v", err)
		}
	}

	w := performRequest(router, "/api/call-for-papers")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CallForPapersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Title != "Newer call" {
		t.Fatalf("expected newest call, got %q", resp.Title)
	}
	if len(resp.Themes) != 3 || resp.Themes[0] != "Alpha" {
		t.Fatalf("expected decoded JSON themes, got %v", resp.Themes)
	}
}

func TestGetCallForPapersCommaThemes(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	cfp := models.CallForPapers{Title: "Legacy themes", Themes: " one , two ,three", IsActive: true}
	if err := db.Create(&cfp).Error; err != nil {
		t.Fatalf("failed to create call: %v", err)
	}

	w := performRequest(router, "/api/call-for-papers")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp models.CallForPapersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(resp.Themes) != len(want) {
		t.Fatalf("expected %d themes, got %v", len(want), resp.Themes)
	}
	for i := range want {
		if resp.Themes[i] != want[i] {
			t.Fatalf("theme %d: expected %q, got %q", i, want[i], resp.Themes[i])
		}
	}
}
