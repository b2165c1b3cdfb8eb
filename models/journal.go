// models/journal.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Journal represents the journals table. A deployment hosts a single journal,
// so reads always take the first row.
type Journal struct {
	ID                   string    `gorm:"primaryKey;column:id" json:"id"`
	Name                 string    `gorm:"column:name" json:"name"`
	Abbreviation         string    `gorm:"column:abbreviation" json:"abbreviation"`
	IssnPrint            string    `gorm:"column:issn_print" json:"issnPrint"`
	IssnOnline           string    `gorm:"column:issn_online" json:"issnOnline"`
	Description          string    `gorm:"column:description" json:"description"`
	Mission              string    `gorm:"column:mission" json:"mission"`
	Scope                string    `gorm:"column:scope" json:"scope"`
	PeerReviewPolicy     string    `gorm:"column:peer_review_policy" json:"peerReviewPolicy,omitempty"`
	PublicationEthics    string    `gorm:"column:publication_ethics" json:"publicationEthics,omitempty"`
	OpenAccess           bool      `gorm:"column:open_access" json:"openAccess"`
	PublicationFrequency string    `gorm:"column:publication_frequency" json:"publicationFrequency"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Journal) TableName() string {
	return "journals"
}

func (j *Journal) BeforeCreate(*gorm.DB) error {
	ensureID(&j.ID)
	return nil
}

// JournalStats carries the derived counters attached to the journal response.
// Sums are coalesced to zero in SQL so an empty store reports 0, never null.
type JournalStats struct {
	PublishedArticles int64 `json:"publishedArticles"`
	TotalIssues       int64 `json:"totalIssues"`
	TotalViews        int64 `json:"totalViews"`
	TotalDownloads    int64 `json:"totalDownloads"`
}

// JournalResponse is the projection returned by GET /api/journal.
type JournalResponse struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Abbreviation         string       `json:"abbreviation"`
	IssnPrint            string       `json:"issnPrint"`
	IssnOnline           string       `json:"issnOnline"`
	Description          string       `json:"description"`
	Mission              string       `json:"mission"`
	Scope                string       `json:"scope"`
	OpenAccess           bool         `json:"openAccess"`
	PublicationFrequency string       `json:"publicationFrequency"`
	Stats                JournalStats `json:"stats"`
}

func (j *Journal) ToResponse(stats JournalStats) JournalResponse {
	return JournalResponse{
		ID:                   j.ID,
		Name:                 j.Name,
		Abbreviation:         j.Abbreviation,
		IssnPrint:            j.IssnPrint,
		IssnOnline:           j.IssnOnline,
		Description:          j.Description,
		Mission:              j.Mission,
		Scope:                j.Scope,
		OpenAccess:           j.OpenAccess,
		PublicationFrequency: j.PublicationFrequency,
		Stats:                stats,
	}
}
