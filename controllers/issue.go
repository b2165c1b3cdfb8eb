// controllers/issue.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCurrentIssue returns the most recently published issue with every
// article expanded to full author detail, authors in byline order.
func GetCurrentIssue(c *gin.Context) {
	var issue models.Issue
	err := config.DB.
		Where("is_published = ?", true).
		Preload("Articles").
		Preload("Articles.Authors", func(db *gorm.DB) *gorm.DB {
			return db.Order("author_order ASC")
		}).
		Preload("Articles.Authors.Author").
		Order("publish_date DESC").
		First(&issue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No published issue found"})
			return
		}
		log.Printf("Error fetching current issue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch current issue"})
		return
	}

	c.JSON(http.StatusOK, issue.ToResponse())
}
