// web/fallback.go
package web

import (
	"time"

	"journal-website-api/models"
)

// Sample content rendered when an API call fails, returns a non-OK status,
// or comes back empty. Pages never show an error state; they show this.

func fallbackJournal() *models.JournalResponse {
	return &models.JournalResponse{
		ID:                   "1",
		Name:                 "International Journal of Applied and Allied Disciplines",
		Abbreviation:         "IJAAD",
		IssnPrint:            "1234-5678",
		IssnOnline:           "1234-5686",
		Description:          "A peer-reviewed, open-access journal dedicated to advancing research across applied sciences, engineering, technology, social sciences, management, humanities, and allied disciplines.",
		Mission:              "To provide a platform for researchers, academics, and practitioners to share their findings and contribute to the advancement of knowledge in applied sciences and allied disciplines.",
		Scope:                "Applied sciences, engineering, technology, social sciences, management, humanities, and allied disciplines.",
		OpenAccess:           true,
		PublicationFrequency: "Quarterly",
		Stats: models.JournalStats{
			PublishedArticles: 500,
			TotalIssues:       15,
			TotalViews:        50000,
			TotalDownloads:    25000,
		},
	}
}

func fallbackAnnouncements() []models.Announcement {
	return []models.Announcement{
		{
			ID:      "1",
			Title:   "Welcome to IJAAD",
			Content: "International Journal of Applied and Allied Disciplines",
			Type:    "GENERAL",
		},
	}
}

func fallbackArticles(now time.Time) []models.ArticleSummary {
	return []models.ArticleSummary{
		{
			ID:            "1",
			Title:         "Machine Learning Applications in Healthcare: A Comprehensive Review",
			Abstract:      "This review examines the current state of machine learning applications in healthcare, focusing on diagnostic accuracy, treatment optimization, and patient outcomes...",
			DOI:           "10.1234/ijaad.2024.001",
			ViewCount:     245,
			DownloadCount: 89,
			PublishedDate: &now,
			Authors:       []string{"Dr. Sarah Johnson", "Prof. Michael Chen"},
			Issue:         &models.IssueRef{Volume: 5, Issue: 3},
		},
		{
			ID:            "2",
			Title:         "Sustainable Urban Development: Challenges and Opportunities",
			Abstract:      "Urban sustainability remains a critical challenge in the 21st century. This study analyzes innovative approaches to sustainable city planning...",
			DOI:           "10.1234/ijaad.2024.002",
			ViewCount:     189,
			DownloadCount: 67,
			PublishedDate: &now,
			Authors:       []string{"Dr. Elena Rodriguez", "Prof. James Wilson", "Dr. Aisha Patel"},
			Issue:         &models.IssueRef{Volume: 5, Issue: 3},
		},
		{
			ID:            "3",
			Title:         "Digital Transformation in Education: Post-Pandemic Perspectives",
			Abstract:      "The COVID-19 pandemic accelerated digital transformation in education worldwide. This research explores the long-term impacts and future directions...",
			DOI:           "10.1234/ijaad.2024.003",
			ViewCount:     156,
			DownloadCount: 45,
			PublishedDate: &now,
			Authors:       []string{"Prof. David Kumar", "Dr. Maria Garcia"},
			Issue:         &models.IssueRef{Volume: 5, Issue: 3},
		},
	}
}

func fallbackCallForPapers() *models.CallForPapersResponse {
	deadline := time.Date(time.Now().Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	return &models.CallForPapersResponse{
		ID:          "1",
		Title:       "Call for Papers: Special Issues",
		Description: "IJAAD invites submissions for our upcoming special issues covering cutting-edge research in applied sciences and allied disciplines.",
		Deadline:    &deadline,
		Themes: []string{
			"Artificial Intelligence and Machine Learning Applications",
			"Sustainable Development and Environmental Sciences",
			"Digital Transformation in Education",
			"Healthcare Innovation and Medical Technology",
			"Social Impact of Technology",
			"Advanced Engineering Solutions",
		},
		SpecialNote: "Authors of selected papers will receive a 50% discount on publication fees.",
	}
}

func fallbackSpecialIssues() []models.SpecialIssue {
	d1 := time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)
	p1 := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)
	p2 := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	p3 := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	return []models.SpecialIssue{
		{
			ID:           "1",
			Title:        "AI Applications in Healthcare",
			Description:  "Exploring the transformative impact of artificial intelligence on healthcare delivery, diagnostics, and patient care.",
			GuestEditors: "Dr. Sarah Johnson, Prof. Michael Chen",
			Deadline:     &d1,
			PublishDate:  &p1,
			IsActive:     true,
		},
		{
			ID:           "2",
			Title:        "Sustainable Urban Development",
			Description:  "Innovative approaches to creating sustainable, resilient, and livable cities for the future.",
			GuestEditors: "Dr. Elena Rodriguez, Prof. James Wilson",
			Deadline:     &d2,
			PublishDate:  &p2,
			IsActive:     true,
		},
		{
			ID:           "3",
			Title:        "Digital Education Transformation",
			Description:  "Examining the evolution of education in the digital age and its implications for learning outcomes.",
			GuestEditors: "Prof. David Kumar, Dr. Maria Garcia",
			Deadline:     &d3,
			PublishDate:  &p3,
			IsActive:     true,
		},
	}
}

func fallbackIndexing() []models.Indexing {
	return []models.Indexing{
		{ID: "1", Name: "Google Scholar", Description: "Indexed", IsActive: true},
		{ID: "2", Name: "Scopus", Description: "Under review", IsActive: true},
		{ID: "3", Name: "Web of Science", Description: "Under review", IsActive: true},
		{ID: "4", Name: "DOAJ", Description: "Applied", IsActive: true},
	}
}

func fallbackCurrentIssue() *models.IssueResponse {
	publish := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
	received1 := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	accepted1 := time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC)
	received2 := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	accepted2 := time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC)
	received3 := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	accepted3 := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)

	return &models.IssueResponse{
		ID:          "1",
		Volume:      5,
		Issue:       3,
		Title:       "Advances in Applied Sciences and Technology",
		Description: "This issue features cutting-edge research across multiple disciplines, highlighting innovative approaches to real-world challenges.",
		PublishDate: publish,
		IsPublished: true,
		Articles: []models.ArticleDetail{
			{
				ID:            "1",
				Title:         "Machine Learning Applications in Healthcare: A Comprehensive Review",
				Abstract:      "This review examines the current state of machine learning applications in healthcare, focusing on diagnostic accuracy, treatment optimization, and patient outcomes. We analyze recent advancements, identify key challenges, and propose future research directions.",
				Keywords:      "machine learning, healthcare, artificial intelligence, medical diagnosis, treatment optimization",
				DOI:           "10.1234/ijaad.2024.001",
				PageStart:     123,
				PageEnd:       145,
				ReceivedDate:  &received1,
				AcceptedDate:  &accepted1,
				PublishedDate: &publish,
				ViewCount:     1245,
				DownloadCount: 389,
				Status:        models.ArticleStatusPublished,
				ArticleType:   models.ArticleTypeReview,
				Authors: []models.AuthorDetail{
					{ID: "1", Name: "Dr. Sarah Johnson", Email: "s.johnson@mit.edu", Affiliation: "Massachusetts Institute of Technology", Country: "United States", Orcid: "0000-0002-1234-5678", Order: 1, IsCorresponding: true},
					{ID: "2", Name: "Prof. Michael Chen", Email: "m.chen@stanford.edu", Affiliation: "Stanford University", Country: "United States", Orcid: "0000-0002-8765-4321", Order: 2},
				},
			},
			{
				ID:            "2",
				Title:         "Sustainable Urban Development: Challenges and Opportunities",
				Abstract:      "Urban sustainability remains a critical challenge in the 21st century. This study analyzes innovative approaches to sustainable city planning, examining case studies from multiple continents and identifying best practices for urban development.",
				Keywords:      "urban sustainability, city planning, sustainable development, green infrastructure, urban planning",
				DOI:           "10.1234/ijaad.2024.002",
				PageStart:     146,
				PageEnd:       178,
				ReceivedDate:  &received2,
				AcceptedDate:  &accepted2,
				PublishedDate: &publish,
				ViewCount:     892,
				DownloadCount: 267,
				Status:        models.ArticleStatusPublished,
				ArticleType:   models.ArticleTypeResearch,
				Authors: []models.AuthorDetail{
					{ID: "3", Name: "Dr. Elena Rodriguez", Email: "e.rodriguez@cambridge.ac.uk", Affiliation: "University of Cambridge", Country: "United Kingdom", Orcid: "0000-0002-3456-7890", Order: 1, IsCorresponding: true},
					{ID: "4", Name: "Prof. James Wilson", Email: "j.wilson@harvard.edu", Affiliation: "Harvard University", Country: "United States", Orcid: "0000-0002-2345-6789", Order: 2},
					{ID: "5", Name: "Dr. Aisha Patel", Email: "a.patel@imperial.ac.uk", Affiliation: "Imperial College London", Country: "United Kingdom", Orcid: "0000-0002-4567-8901", Order: 3},
				},
			},
			{
				ID:            "3",
				Title:         "Digital Transformation in Education: Post-Pandemic Perspectives",
				Abstract:      "The COVID-19 pandemic accelerated digital transformation in education worldwide. This research explores the long-term impacts on teaching methodologies, student engagement, and educational outcomes, providing insights for future educational planning.",
				Keywords:      "digital transformation, education, COVID-19, online learning, educational technology",
				DOI:           "10.1234/ijaad.2024.003",
				PageStart:     179,
				PageEnd:       198,
				ReceivedDate:  &received3,
				AcceptedDate:  &accepted3,
				PublishedDate: &publish,
				ViewCount:     756,
				DownloadCount: 234,
				Status:        models.ArticleStatusPublished,
				ArticleType:   models.ArticleTypeResearch,
				Authors: []models.AuthorDetail{
					{ID: "6", Name: "Prof. David Kumar", Email: "d.kumar@ox.ac.uk", Affiliation: "University of Oxford", Country: "United Kingdom", Orcid: "0000-0002-5678-9012", Order: 1, IsCorresponding: true},
					{ID: "7", Name: "Dr. Maria Garcia", Email: "m.garcia@ubc.ca", Affiliation: "University of British Columbia", Country: "Canada", Orcid: "0000-0002-6789-0123", Order: 2},
				},
			},
		},
	}
}

func fallbackEditorialBoard() map[string][]models.BoardMember {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return map[string][]models.BoardMember{
		models.PositionEditorInChief: {
			{
				ID: "1", Name: "Dr. Sarah Johnson", Email: "s.johnson@ijaad.org",
				Position: models.PositionEditorInChief, Department: "Department of Computer Science",
				Institution: "Massachusetts Institute of Technology", Country: "United States",
				Bio:       "Dr. Sarah Johnson is a renowned researcher in artificial intelligence and machine learning with over 20 years of experience. She has published extensively in top-tier journals and has been recognized with numerous awards for her contributions to the field.",
				StartDate: start, IsActive: true,
			},
		},
		models.PositionAssociateEditor: {
			{
				ID: "2", Name: "Prof. Michael Chen", Email: "m.chen@ijaad.org",
				Position: models.PositionAssociateEditor, Department: "Department of Engineering",
				Institution: "Stanford University", Country: "United States",
				Bio:       "Prof. Michael Chen specializes in sustainable engineering and renewable energy systems. His research focuses on developing innovative solutions for global energy challenges.",
				StartDate: start, IsActive: true,
			},
			{
				ID: "3", Name: "Dr. Elena Rodriguez", Email: "e.rodriguez@ijaad.org",
				Position: models.PositionAssociateEditor, Department: "Department of Social Sciences",
				Institution: "University of Cambridge", Country: "United Kingdom",
				Bio:       "Dr. Elena Rodriguez is an expert in social psychology and cross-cultural research. Her work examines the intersection of technology and human behavior.",
				StartDate: start, IsActive: true,
			},
		},
		models.PositionAdvisoryBoard: {
			{
				ID: "4", Name: "Prof. James Wilson", Email: "j.wilson@ijaad.org",
				Position: models.PositionAdvisoryBoard, Department: "Department of Business",
				Institution: "Harvard Business School", Country: "United States",
				Bio:       "Prof. James Wilson is a distinguished scholar in strategic management and organizational behavior. He has advised numerous Fortune 500 companies and government agencies.",
				StartDate: start, IsActive: true,
			},
		},
	}
}
