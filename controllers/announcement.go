// controllers/announcement.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
)

const announcementsLimit = 5

// GetAnnouncements returns active, unexpired announcements, newest first.
// Expiry is evaluated against the current time on every request.
func GetAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	err := config.DB.
		Where("is_active = ?", true).
		Where("end_date IS NULL OR end_date >= ?", time.Now()).
		Order("created_at DESC").
		Limit(announcementsLimit).
		Find(&announcements).Error
	if err != nil {
		log.Printf("Error fetching announcements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}

	if announcements == nil {
		announcements = []models.Announcement{}
	}

	c.JSON(http.StatusOK, announcements)
}
