// controllers/journal.go
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

// GetJournal returns the journal record with derived publication stats.
// Deployments host a single journal, so the first row wins.
func GetJournal(c *gin.Context) {
	var journal models.Journal
	if err := config.DB.First(&journal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		log.Printf("Error fetching journal information: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal information"})
		return
	}

	var stats models.JournalStats

	if err := config.DB.Model(&models.Article{}).
		Where("status = ?", models.ArticleStatusPublished).
		Count(&stats.PublishedArticles).Error; err != nil {
		log.Printf("Error counting published articles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal information"})
		return
	}

	if err := config.DB.Model(&models.Issue{}).Count(&stats.TotalIssues).Error; err != nil {
		log.Printf("Error counting issues: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal information"})
		return
	}

	// COALESCE keeps the sums at 0 when no published article exists.
	if err := config.DB.Model(&models.Article{}).
		Where("status = ?", models.ArticleStatusPublished).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&stats.TotalViews).Error; err != nil {
		log.Printf("Error summing article views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal information"})
		return
	}

	if err := config.DB.Model(&models.Article{}).
		Where("status = ?", models.ArticleStatusPublished).
		Select("COALESCE(SUM(download_count), 0)").
		Scan(&stats.TotalDownloads).Error; err != nil {
		log.Printf("Error summing article downloads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal information"})
		return
	}

	c.JSON(http.StatusOK, journal.ToResponse(stats))
}
