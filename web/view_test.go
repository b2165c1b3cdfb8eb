package web

import (
	"testing"
	"time"

	"journal-website-api/models"
)

func TestTimeRemainingTiers(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		wantText string
		wantTier string
	}{
		{"passed", now.Add(-48 * time.Hour), "Closed", "closed"},
		{"urgent", now.Add(20 * 24 * time.Hour), "20 days left", "urgent"},
		{"single day", now.Add(20 * time.Hour), "1 day left", "urgent"},
		{"warning", now.Add(45 * 24 * time.Hour), "45 days left", "warning"},
		{"normal", now.Add(90 * 24 * time.Hour), "90 days left", "normal"},
	}
	for _, tc := range tests {
		badge := TimeRemaining(tc.deadline, now)
		if badge.Text != tc.wantText || badge.Tier != tc.wantTier {
			t.Fatalf("%s: expected {%s %s}, got {%s %s}",
				tc.name, tc.wantText, tc.wantTier, badge.Text, badge.Tier)
		}
	}
}

func TestArticleTypeHelpers(t *testing.T) {
	if got := ArticleTypeLabel(models.ArticleTypeResearch); got != "Research Article" {
		t.Fatalf("expected Research Article, got %q", got)
	}
	if got := ArticleTypeLabel("SOMETHING_NEW"); got != "SOMETHING_NEW" {
		t.Fatalf("unknown type should pass through, got %q", got)
	}
	if got := ArticleTypeColor(models.ArticleTypeReview); got != "badge-green" {
		t.Fatalf("expected badge-green, got %q", got)
	}
	if got := ArticleTypeColor("SOMETHING_NEW"); got != "badge-gray" {
		t.Fatalf("unknown type should fall back to badge-gray, got %q", got)
	}
}

func TestPositionTitle(t *testing.T) {
	if got := PositionTitle(models.PositionEditorInChief); got != "Editor-in-Chief" {
		t.Fatalf("expected Editor-in-Chief, got %q", got)
	}
	if got := PositionTitle("GUEST_EDITOR"); got != "GUEST_EDITOR" {
		t.Fatalf("unknown position should pass through, got %q", got)
	}
}

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords("machine learning, healthcare , ,ai")
	want := []string{"machine learning", "healthcare", "ai"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyword %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSummarizeBoard(t *testing.T) {
	board := map[string][]models.BoardMember{
		models.PositionEditorInChief: {
			{Name: "A", Country: "United States", Institution: "MIT"},
		},
		models.PositionAssociateEditor: {
			{Name: "B", Country: "United States", Institution: "Stanford"},
			{Name: "C", Country: "United Kingdom", Institution: "Cambridge"},
		},
	}

	stats := SummarizeBoard(board)
	if stats.Members != 3 {
		t.Fatalf("expected 3 members, got %d", stats.Members)
	}
	if stats.Countries != 2 {
		t.Fatalf("expected 2 distinct countries, got %d", stats.Countries)
	}
	if stats.Institutions != 3 {
		t.Fatalf("expected 3 distinct institutions, got %d", stats.Institutions)
	}
}
