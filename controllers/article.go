// controllers/article.go
package controllers

import (
	"log"
	"net/http"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const latestArticlesLimit = 6

// GetLatestArticles returns the most recently published articles as summaries
// with authors flattened to a name list and the issue reduced to its numbers.
func GetLatestArticles(c *gin.Context) {
	var articles []models.Article
	err := config.DB.
		Where("status = ?", models.ArticleStatusPublished).
		Preload("Authors", func(db *gorm.DB) *gorm.DB {
			return db.Order("author_order ASC")
		}).
		Preload("Authors.Author").
		Preload("Issue").
		Order("published_date DESC").
		Limit(latestArticlesLimit).
		Find(&articles).Error
	if err != nil {
		log.Printf("Error fetching latest articles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch latest articles"})
		return
	}

	summaries := make([]models.ArticleSummary, 0, len(articles))
	for i := range articles {
		summaries = append(summaries, articles[i].ToSummary())
	}

	c.JSON(http.StatusOK, summaries)
}
