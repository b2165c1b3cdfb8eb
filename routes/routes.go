package routes

import (
	"journal-website-api/controllers"
	"journal-website-api/web"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the read API and the server-rendered pages.
func SetupRoutes(router *gin.Engine, pages *web.PageHandler) {
	// Read API group
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Journal website API is running",
			})
		})

		api.GET("/journal", controllers.GetJournal)
		api.GET("/articles/latest", controllers.GetLatestArticles)
		api.GET("/current-issue", controllers.GetCurrentIssue)
		api.GET("/announcements", controllers.GetAnnouncements)
		api.GET("/call-for-papers", controllers.GetCallForPapers)
		api.GET("/special-issues", controllers.GetSpecialIssues)
		api.GET("/indexing", controllers.GetIndexing)
		api.GET("/editorial-board", controllers.GetEditorialBoard)
	}

	// Public pages, rendered through the shared shell
	router.GET("/", pages.Home)
	router.GET("/about", pages.About)
	router.GET("/author-guidelines", pages.AuthorGuidelines)
	router.GET("/call-for-papers", pages.CallForPapers)
	router.GET("/current-issue", pages.CurrentIssue)
	router.GET("/editorial-board", pages.EditorialBoard)
}
