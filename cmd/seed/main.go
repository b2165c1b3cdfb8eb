// cmd/seed seeds the content store with a small sample dataset so the site
// renders real data out of the box. It is idempotent: an existing journal
// row means the store is already populated and the seeder exits.
package main

import (
	"log"
	"time"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	log.Println("Running migrations...")
	if err := config.DB.AutoMigrate(
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
		log.Fatalf("Failed to migrate: %v", err)
	}

	var count int64
	if err := config.DB.Model(&models.Journal{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect store: %v", err)
	}
	if count > 0 {
		log.Println("Store already seeded, nothing to do")
		return
	}

	now := time.Now()

	journal := models.Journal{
		Name:                 "International Journal of Applied and Allied Disciplines",
		Abbreviation:         "IJAAD",
		IssnPrint:            "1234-5678",
		IssnOnline:           "1234-5686",
		Description:          "A peer-reviewed, open-access journal dedicated to advancing research across applied sciences, engineering, technology, social sciences, management, humanities, and allied disciplines.",
		Mission:              "To provide a platform for researchers, academics, and practitioners to share their findings and contribute to the advancement of knowledge in applied sciences and allied disciplines.",
		Scope:                "Applied sciences, engineering, technology, social sciences, management, humanities, and allied disciplines.",
		PeerReviewPolicy:     "IJAAD follows a double-blind peer review process to ensure the highest quality and integrity of published research.",
		PublicationEthics:    "IJAAD is committed to maintaining the highest standards of publication ethics and follows the guidelines of the Committee on Publication Ethics (COPE).",
		OpenAccess:           true,
		PublicationFrequency: "Quarterly",
	}
	if err := config.DB.Create(&journal).Error; err != nil {
		log.Fatalf("Failed to seed journal: %v", err)
	}

	issue := models.Issue{
		Volume:      5,
		Issue:       3,
		Title:       "Advances in Applied Sciences and Technology",
		Description: "This issue features cutting-edge research across multiple disciplines, highlighting innovative approaches to real-world challenges.",
		PublishDate: time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
		IsPublished: true,
	}
	if err := config.DB.Create(&issue).Error; err != nil {
		log.Fatalf("Failed to seed issue: %v", err)
	}

	authors := []models.Author{
		{Name: "Dr. Sarah Johnson", Email: "s.johnson@mit.edu", Affiliation: "Massachusetts Institute of Technology", Country: "United States", Orcid: "0000-0002-1234-5678"},
		{Name: "Prof. Michael Chen", Email: "m.chen@stanford.edu", Affiliation: "Stanford University", Country: "United States", Orcid: "0000-0002-8765-4321"},
		{Name: "Dr. Elena Rodriguez", Email: "e.rodriguez@cambridge.ac.uk", Affiliation: "University of Cambridge", Country: "United Kingdom", Orcid: "0000-0002-3456-7890"},
		{Name: "Prof. James Wilson", Email: "j.wilson@harvard.edu", Affiliation: "Harvard University", Country: "United States", Orcid: "0000-0002-2345-6789"},
	}
	for i := range authors {
		if err := config.DB.Create(&authors[i]).Error; err != nil {
			log.Fatalf("Failed to seed author: %v", err)
		}
	}

	publish := issue.PublishDate
	received := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	accepted := time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC)

	articles := []models.Article{
		{
			Title:         "Machine Learning Applications in Healthcare: A Comprehensive Review",
			Abstract:      "This review examines the current state of machine learning applications in healthcare, focusing on diagnostic accuracy, treatment optimization, and patient outcomes.",
			Keywords:      "machine learning, healthcare, artificial intelligence, medical diagnosis",
			DOI:           "10.1234/ijaad.2024.001",
			PageStart:     123,
			PageEnd:       145,
			ReceivedDate:  &received,
			AcceptedDate:  &accepted,
			PublishedDate: &publish,
			ViewCount:     1245,
			DownloadCount: 389,
			Status:        models.ArticleStatusPublished,
			ArticleType:   models.ArticleTypeReview,
			IssueID:       &issue.ID,
		},
		{
			Title:         "Sustainable Urban Development: Challenges and Opportunities",
			Abstract:      "Urban sustainability remains a critical challenge in the 21st century. This study analyzes innovative approaches to sustainable city planning.",
			Keywords:      "urban sustainability, city planning, sustainable development",
			DOI:           "10.1234/ijaad.2024.002",
			PageStart:     146,
			PageEnd:       178,
			ReceivedDate:  &received,
			AcceptedDate:  &accepted,
			PublishedDate: &publish,
			ViewCount:     892,
			DownloadCount: 267,
			Status:        models.ArticleStatusPublished,
			ArticleType:   models.ArticleTypeResearch,
			IssueID:       &issue.ID,
		},
	}
	for i := range articles {
		if err := config.DB.Create(&articles[i]).Error; err != nil {
			log.Fatalf("Failed to seed article: %v", err)
		}
	}

	links := []models.ArticleAuthor{
		{ArticleID: articles[0].ID, AuthorID: authors[0].ID, AuthorOrder: 1, IsCorresponding: true},
		{ArticleID: articles[0].ID, AuthorID: authors[1].ID, AuthorOrder: 2},
		{ArticleID: articles[1].ID, AuthorID: authors[2].ID, AuthorOrder: 1, IsCorresponding: true},
		{ArticleID: articles[1].ID, AuthorID: authors[3].ID, AuthorOrder: 2},
	}
	for i := range links {
		if err := config.DB.Create(&links[i]).Error; err != nil {
			log.Fatalf("Failed to seed article authors: %v", err)
		}
	}

	endDate := now.AddDate(0, 3, 0)
	announcements := []models.Announcement{
		{Title: "Welcome to IJAAD", Content: "International Journal of Applied and Allied Disciplines", Type: "GENERAL", IsActive: true},
		{Title: "Volume 5, Issue 3 now online", Content: "The latest issue is available in open access.", Type: "PUBLICATION", IsActive: true, EndDate: &endDate},
	}
	for i := range announcements {
		if err := config.DB.Create(&announcements[i]).Error; err != nil {
			log.Fatalf("Failed to seed announcement: %v", err)
		}
	}

	deadline := now.AddDate(0, 4, 0)
	cfp := models.CallForPapers{
		Title:       "Call for Papers: Special Issues",
		Description: "IJAAD invites submissions for our upcoming special issues covering cutting-edge research in applied sciences and allied disciplines.",
		Deadline:    &deadline,
		Themes:      `["Artificial Intelligence and Machine Learning Applications","Sustainable Development and Environmental Sciences","Digital Transformation in Education"]`,
		SpecialNote: "Authors of selected papers will receive a 50% discount on publication fees.",
		IsActive:    true,
	}
	if err := config.DB.Create(&cfp).Error; err != nil {
		log.Fatalf("Failed to seed call for papers: %v", err)
	}

	siDeadline := now.AddDate(0, 2, 0)
	siPublish := now.AddDate(0, 6, 0)
	special := models.SpecialIssue{
		Title:        "AI Applications in Healthcare",
		Description:  "Exploring the transformative impact of artificial intelligence on healthcare delivery, diagnostics, and patient care.",
		GuestEditors: "Dr. Sarah Johnson, Prof. Michael Chen",
		Deadline:     &siDeadline,
		PublishDate:  &siPublish,
		IsActive:     true,
	}
	if err := config.DB.Create(&special).Error; err != nil {
		log.Fatalf("Failed to seed special issue: %v", err)
	}

	indexing := []models.Indexing{
		{Name: "DOAJ", Description: "Directory of Open Access Journals", URL: "https://doaj.org", IsActive: true},
		{Name: "Google Scholar", Description: "Google Scholar indexing", URL: "https://scholar.google.com", IsActive: true},
		{Name: "Scopus", Description: "Under review", URL: "https://www.scopus.com", IsActive: true},
	}
	for i := range indexing {
		if err := config.DB.Create(&indexing[i]).Error; err != nil {
			log.Fatalf("Failed to seed indexing: %v", err)
		}
	}

	boardStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	boardSeed := []struct {
		name, email, position, department, institution, country, bio string
	}{
		{"Dr. Sarah Johnson", "s.johnson@ijaad.org", models.PositionEditorInChief, "Department of Computer Science", "Massachusetts Institute of Technology", "United States", "Renowned researcher in artificial intelligence and machine learning."},
		{"Prof. Michael Chen", "m.chen@ijaad.org", models.PositionAssociateEditor, "Department of Engineering", "Stanford University", "United States", "Specialist in sustainable engineering and renewable energy systems."},
		{"Dr. Elena Rodriguez", "e.rodriguez@ijaad.org", models.PositionAssociateEditor, "Department of Social Sciences", "University of Cambridge", "United Kingdom", "Expert in social psychology and cross-cultural research."},
		{"Prof. James Wilson", "j.wilson@ijaad.org", models.PositionAdvisoryBoard, "Department of Business", "Harvard Business School", "United States", "Distinguished scholar in strategic management."},
	}
	for _, b := range boardSeed {
		user := models.User{Name: b.name, Email: b.email}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to seed user: %v", err)
		}
		member := models.EditorialBoard{
			UserID:      user.ID,
			JournalID:   &journal.ID,
			Position:    b.position,
			Department:  b.department,
			Institution: b.institution,
			Country:     b.country,
			Bio:         b.bio,
			StartDate:   boardStart,
			IsActive:    true,
		}
		if err := config.DB.Create(&member).Error; err != nil {
			log.Fatalf("Failed to seed board member: %v", err)
		}
	}

	log.Println("Seed complete")
}
