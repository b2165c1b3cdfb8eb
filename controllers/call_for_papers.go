// controllers/call_for_papers.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
)

// GetCallForPapers returns the single most recent active, unexpired call, or
// JSON null when none qualifies. An empty result is not an error here.
func GetCallForPapers(c *gin.Context) {
	var calls []models.CallForPapers
	err := config.DB.
		Where("is_active = ?", true).
		Where("deadline IS NULL OR deadline >= ?", time.Now()).
		Order("created_at DESC").
		Limit(1).
		Find(&calls).Error
	if err != nil {
		log.Printf("Error fetching call for papers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch call for papers"})
		return
	}

	if len(calls) == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, calls[0].ToResponse())
}
