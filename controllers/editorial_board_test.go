package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"journal-website-api/models"

	"gorm.io/gorm"
)

func seedBoardMember(t *testing.T, db *gorm.DB, name, position string, start time.Time, active bool) {
	t.Helper()

	user := models.User{Name: name, Email: name + "@example.org"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	member := models.EditorialBoard{
		UserID:    user.ID,
		Position:  position,
		StartDate: start,
		IsActive:  true,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to create board member: %v", err)
	}
	if !active {
		if err := db.Model(&member).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to deactivate board member: %v", err)
		}
	}
}

func TestGetEditorialBoardEmpty(t *testing.T) {
	newTestDB(t)
	router := newTestRouter()

	w := performRequest(router, "/api/editorial-board")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got map[string][]models.BoardMember
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no groups, got %v", got)
	}
}

func TestGetEditorialBoardGrouping(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	later := start.AddDate(0, 6, 0)

	seedBoardMember(t, db, "Chief", models.PositionEditorInChief, start, true)
	seedBoardMember(t, db, "Associate Late", models.PositionAssociateEditor, later, true)
	seedBoardMember(t, db, "Associate Early", models.PositionAssociateEditor, start, true)
	seedBoardMember(t, db, "Former Editor", models.PositionAssociateEditor, start, false)

	w := performRequest(router, "/api/editorial-board")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got map[string][]models.BoardMember
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 position groups, got %d: %v", len(got), got)
	}
	if _, ok := got[models.PositionReviewer]; ok {
		t.Fatal("empty position must not appear as a key")
	}

	chiefs := got[models.PositionEditorInChief]
	if len(chiefs) != 1 || chiefs[0].Name != "Chief" {
		t.Fatalf("unexpected editor-in-chief group: %+v", chiefs)
	}

	associates := got[models.PositionAssociateEditor]
	if len(associates) != 2 {
		t.Fatalf("expected 2 associate editors, got %d", len(associates))
	}
	if associates[0].Name != "Associate Early" || associates[1].Name != "Associate Late" {
		t.Fatalf("associates not ordered by start date: %+v", associates)
	}
	for _, m := range associates {
		if m.Name == "Former Editor" {
			t.Fatal("inactive member leaked into response")
		}
	}
}
