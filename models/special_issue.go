// models/special_issue.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// SpecialIssue represents the special_issues table.
type SpecialIssue struct {
	ID           string     `gorm:"primaryKey;column:id" json:"id"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	GuestEditors string     `gorm:"column:guest_editors" json:"guestEditors"`
	Deadline     *time.Time `gorm:"column:deadline" json:"deadline"`
	PublishDate  *time.Time `gorm:"column:publish_date" json:"publishDate"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (SpecialIssue) TableName() string {
	return "special_issues"
}

func (s *SpecialIssue) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
