// web/view.go
package web

import (
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"journal-website-api/models"
)

// DeadlineBadge is the urgency badge computed from a submission deadline.
// Tiers: closed, urgent (<=30 days), warning (<=60 days), normal.
type DeadlineBadge struct {
	Text string
	Tier string
}

// TimeRemaining buckets the time until deadline into an urgency tier.
func TimeRemaining(deadline, now time.Time) DeadlineBadge {
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		return DeadlineBadge{Text: "Closed", Tier: "closed"}
	case days <= 30:
		return DeadlineBadge{Text: pluralDays(days), Tier: "urgent"}
	case days <= 60:
		return DeadlineBadge{Text: pluralDays(days), Tier: "warning"}
	default:
		return DeadlineBadge{Text: pluralDays(days), Tier: "normal"}
	}
}

func pluralDays(days int) string {
	if days == 1 {
		return "1 day left"
	}
	return strconv.Itoa(days) + " days left"
}

var articleTypeLabels = map[string]string{
	models.ArticleTypeResearch:           "Research Article",
	models.ArticleTypeReview:             "Review Article",
	models.ArticleTypeShortCommunication: "Short Communication",
	models.ArticleTypeCaseStudy:          "Case Study",
	models.ArticleTypeEditorial:          "Editorial",
	models.ArticleTypeLetterToEditor:     "Letter to Editor",
}

var articleTypeColors = map[string]string{
	models.ArticleTypeResearch:           "badge-blue",
	models.ArticleTypeReview:             "badge-green",
	models.ArticleTypeShortCommunication: "badge-yellow",
	models.ArticleTypeCaseStudy:          "badge-purple",
	models.ArticleTypeEditorial:          "badge-red",
	models.ArticleTypeLetterToEditor:     "badge-orange",
}

// ArticleTypeLabel returns the display label for an article type.
func ArticleTypeLabel(articleType string) string {
	if label, ok := articleTypeLabels[articleType]; ok {
		return label
	}
	return articleType
}

// ArticleTypeColor returns the badge class for an article type.
func ArticleTypeColor(articleType string) string {
	if color, ok := articleTypeColors[articleType]; ok {
		return color
	}
	return "badge-gray"
}

var positionTitles = map[string]string{
	models.PositionEditorInChief:   "Editor-in-Chief",
	models.PositionAssociateEditor: "Associate Editors",
	models.PositionAssistantEditor: "Assistant Editors",
	models.PositionAdvisoryBoard:   "Advisory Board",
	models.PositionReviewer:        "Reviewers",
}

// PositionTitle returns the display heading for a board position group.
func PositionTitle(position string) string {
	if title, ok := positionTitles[position]; ok {
		return title
	}
	return position
}

// SplitKeywords splits a stored keyword string into badge values.
func SplitKeywords(keywords string) []string {
	parts := strings.Split(keywords, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// BoardStats summarizes a grouped board for the page header counters.
type BoardStats struct {
	Members      int
	Countries    int
	Institutions int
}

// SummarizeBoard de-duplicates countries and institutions across all groups.
func SummarizeBoard(board map[string][]models.BoardMember) BoardStats {
	countries := make(map[string]struct{})
	institutions := make(map[string]struct{})
	total := 0
	for _, members := range board {
		for _, m := range members {
			total++
			countries[m.Country] = struct{}{}
			institutions[m.Institution] = struct{}{}
		}
	}
	return BoardStats{Members: total, Countries: len(countries), Institutions: len(institutions)}
}

// FuncMap exposes the view helpers to the page templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"formatDatePtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"typeLabel": ArticleTypeLabel,
		"typeColor": ArticleTypeColor,
		"keywords":  SplitKeywords,
		"deadlineBadge": func(t *time.Time) DeadlineBadge {
			if t == nil {
				return DeadlineBadge{Text: "Open", Tier: "normal"}
			}
			return TimeRemaining(*t, time.Now())
		},
		"positionTitle": PositionTitle,
		"year": func() int {
			return time.Now().Year()
		},
	}
}
