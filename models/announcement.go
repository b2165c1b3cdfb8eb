// models/announcement.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Announcement represents the announcements table. Rows are returned to the
// public site only while active and unexpired, evaluated at request time.
type Announcement struct {
	ID        string     `gorm:"primaryKey;column:id" json:"id"`
	Title     string     `gorm:"column:title" json:"title"`
	Content   string     `gorm:"column:content" json:"content"`
	Type      string     `gorm:"column:type;default:GENERAL" json:"type"`
	IsActive  bool       `gorm:"column:is_active;default:true" json:"isActive"`
	EndDate   *time.Time `gorm:"column:end_date" json:"endDate"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (a *Announcement) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// IsExpired reports whether the announcement's end date has passed.
func (a *Announcement) IsExpired(now time.Time) bool {
	if a.EndDate == nil {
		return false
	}
	return a.EndDate.Before(now)
}
