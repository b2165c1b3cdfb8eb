// controllers/indexing.go
package controllers

import (
	"log"
	"net/http"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
)

// GetIndexing returns all active indexing services, alphabetical by name.
func GetIndexing(c *gin.Context) {
	var indexing []models.Indexing
	err := config.DB.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&indexing).Error
	if err != nil {
		log.Printf("Error fetching indexing information: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch indexing information"})
		return
	}

	if indexing == nil {
		indexing = []models.Indexing{}
	}

	c.JSON(http.StatusOK, indexing)
}
