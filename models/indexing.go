// models/indexing.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Indexing represents the indexing_services table (databases the journal is
// indexed in, shown as logo cards on the home page).
type Indexing struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	URL         string    `gorm:"column:url" json:"url"`
	LogoURL     string    `gorm:"column:logo_url" json:"logoUrl"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Indexing) TableName() string {
	return "indexing_services"
}

func (i *Indexing) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
