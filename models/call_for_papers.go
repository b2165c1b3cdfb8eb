// models/call_for_papers.go
package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

// CallForPapers represents the call_for_papers table. Themes is a raw string
// column: older rows hold a comma-separated list, newer rows a JSON array.
// ParseThemes accepts both.
type CallForPapers struct {
	ID          string     `gorm:"primaryKey;column:id" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	Deadline    *time.Time `gorm:"column:deadline" json:"deadline"`
	Themes      string     `gorm:"column:themes" json:"themes"`
	SpecialNote string     `gorm:"column:special_note" json:"specialNote"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (CallForPapers) TableName() string {
	return "call_for_papers"
}

func (c *CallForPapers) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// ParseThemes decodes the stored themes value. A JSON array is taken as-is;
// anything else is split on commas and trimmed.
func ParseThemes(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var themes []string
	if err := json.Unmarshal([]byte(raw), &themes); err == nil {
		return themes
	}

	parts := strings.Split(raw, ",")
	themes = make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			themes = append(themes, t)
		}
	}
	return themes
}

// CallForPapersResponse is the projection returned by GET /api/call-for-papers.
type CallForPapersResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Themes      []string   `json:"themes"`
	SpecialNote string     `json:"specialNote"`
}

func (c *CallForPapers) ToResponse() CallForPapersResponse {
	return CallForPapersResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Deadline:    c.Deadline,
		Themes:      ParseThemes(c.Themes),
		SpecialNote: c.SpecialNote,
	}
}
