package main

import (
	"log"
	"os"
	"path/filepath"

	"journal-website-api/config"
	"journal-website-api/middleware"
	"journal-website-api/routes"
	"journal-website-api/web"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database
	config.InitDB()

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Page templates
	templatesPath := os.Getenv("TEMPLATES_PATH")
	if templatesPath == "" {
		templatesPath = filepath.Join("web", "templates")
	}
	router.SetHTMLTemplate(web.LoadTemplates(filepath.Join(templatesPath, "*.html")))

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// Pages fetch from the sibling API endpoints over HTTP; BASE_URL points
	// them somewhere else when the API sits behind a proxy.
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	pages := web.NewPageHandler(web.NewClient(baseURL))

	// Setup routes
	routes.SetupRoutes(router, pages)

	log.Printf("Server starting on port %s", port)
	if ginMode == "release" {
		log.Printf("Running in production mode")
	} else {
		log.Printf("Running in development mode")
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
