// controllers/special_issue.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
)

// GetSpecialIssues returns all active special issues whose submission
// deadline has not passed, newest first.
func GetSpecialIssues(c *gin.Context) {
	var specialIssues []models.SpecialIssue
	err := config.DB.
		Where("is_active = ?", true).
		Where("deadline IS NULL OR deadline >= ?", time.Now()).
		Order("created_at DESC").
		Find(&specialIssues).Error
	if err != nil {
		log.Printf("Error fetching special issues: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch special issues"})
		return
	}

	if specialIssues == nil {
		specialIssues = []models.SpecialIssue{}
	}

	c.JSON(http.StatusOK, specialIssues)
}
