package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store, migrates the schema and installs
// it as the package-level connection the controllers use.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Journal{},
		&models.Issue{},
		&models.Article{},
		&models.Author{},
		&models.ArticleAuthor{},
		&models.Announcement{},
		&models.CallForPapers{},
		&models.SpecialIssue{},
		&models.Indexing{},
		&models.User{},
		&models.EditorialBoard{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	config.DB = db
	return db
}

// newTestRouter registers the read API the way routes.SetupRoutes does,
// without the page handlers.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	api.GET("/journal", GetJournal)
	api.GET("/articles/latest", GetLatestArticles)
	api.GET("/current-issue", GetCurrentIssue)
	api.GET("/announcements", GetAnnouncements)
	api.GET("/call-for-papers", GetCallForPapers)
	api.GET("/special-issues", GetSpecialIssues)
	api.GET("/indexing", GetIndexing)
	api.GET("/editorial-board", GetEditorialBoard)

	return router
}

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
