// models/issue.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Issue represents the issues table.
type Issue struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Volume      int       `gorm:"column:volume" json:"volume"`
	Issue       int       `gorm:"column:issue" json:"issue"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	PublishDate time.Time `gorm:"column:publish_date" json:"publishDate"`
	IsPublished bool      `gorm:"column:is_published" json:"isPublished"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`

	Articles []Article `gorm:"foreignKey:IssueID" json:"articles,omitempty"`
}

func (Issue) TableName() string {
	return "issues"
}

func (i *Issue) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

// IssueResponse is the projection returned by GET /api/current-issue.
type IssueResponse struct {
	ID          string          `json:"id"`
	Volume      int             `json:"volume"`
	Issue       int             `json:"issue"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PublishDate time.Time       `json:"publishDate"`
	IsPublished bool            `json:"isPublished"`
	Articles    []ArticleDetail `json:"articles"`
}

func (i *Issue) ToResponse() IssueResponse {
	articles := make([]ArticleDetail, 0, len(i.Articles))
	for idx := range i.Articles {
		articles = append(articles, i.Articles[idx].ToDetail())
	}

	return IssueResponse{
		ID:          i.ID,
		Volume:      i.Volume,
		Issue:       i.Issue,
		Title:       i.Title,
		Description: i.Description,
		PublishDate: i.PublishDate,
		IsPublished: i.IsPublished,
		Articles:    articles,
	}
}
