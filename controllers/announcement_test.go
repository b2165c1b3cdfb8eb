package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"journal-website-api/models"
)

func TestGetAnnouncementsEmpty(t *testing.T) {
	newTestDB(t)
	router := newTestRouter()

	w := performRequest(router, "/api/announcements")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestGetAnnouncementsFiltersAndCaps(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	// Seven eligible rows with staggered creation times; only the five
	// newest should come back.
	for i := 0; i < 7; i++ {
		a := models.Announcement{
			Title:     "Eligible " + string(rune('A'+i)),
			Content:   "content",
			IsActive:  true,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		}
		if err := db.Create(&a).Error; err != nil {
			t.Fatalf("failed to create announcement: %v", err)
		}
	}

	expired := models.Announcement{Title: "Expired", IsActive: true, EndDate: &past, CreatedAt: now}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("failed to create expired announcement: %v", err)
	}

	inactive := models.Announcement{Title: "Inactive", EndDate: &future, CreatedAt: now}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("failed to create inactive announcement: %v", err)
	}
	if err := db.Model(&inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate announcement: %v", err)
	}

	w := performRequest(router, "/api/announcements")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got []models.Announcement
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 announcements, got %d", len(got))
	}
	for _, a := range got {
		if a.Title == "Expired" || a.Title == "Inactive" {
			t.Fatalf("excluded announcement %q leaked into response", a.Title)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("announcements not sorted newest first at index %d", i)
		}
	}
}

func TestGetAnnouncementsKeepsOpenEnded(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	a := models.Announcement{Title: "No end date", IsActive: true}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("failed to create announcement: %v", err)
	}

	w := performRequest(router, "/api/announcements")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got []models.Announcement
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Title != "No end date" {
		t.Fatalf("expected the open-ended announcement, got %+v", got)
	}
}
