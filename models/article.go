// models/article.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Article status values
const (
	ArticleStatusDraft       = "DRAFT"
	ArticleStatusUnderReview = "UNDER_REVIEW"
	ArticleStatusAccepted    = "ACCEPTED"
	ArticleStatusPublished   = "PUBLISHED"
	ArticleStatusRejected    = "REJECTED"
)

// Article type values
const (
	ArticleTypeResearch           = "RESEARCH_ARTICLE"
	ArticleTypeReview             = "REVIEW_ARTICLE"
	ArticleTypeShortCommunication = "SHORT_COMMUNICATION"
	ArticleTypeCaseStudy          = "CASE_STUDY"
	ArticleTypeEditorial          = "EDITORIAL"
	ArticleTypeLetterToEditor     = "LETTER_TO_EDITOR"
)

// Article represents the articles table. Keywords are stored as a single
// comma-separated string, the way the authoring workflow writes them.
type Article struct {
	ID            string     `gorm:"primaryKey;column:id" json:"id"`
	Title         string     `gorm:"column:title" json:"title"`
	Abstract      string     `gorm:"column:abstract" json:"abstract"`
	Keywords      string     `gorm:"column:keywords" json:"keywords"`
	DOI           string     `gorm:"column:doi" json:"doi"`
	PageStart     int        `gorm:"column:page_start" json:"pageStart"`
	PageEnd       int        `gorm:"column:page_end" json:"pageEnd"`
	ReceivedDate  *time.Time `gorm:"column:received_date" json:"receivedDate"`
	AcceptedDate  *time.Time `gorm:"column:accepted_date" json:"acceptedDate"`
	PublishedDate *time.Time `gorm:"column:published_date" json:"publishedDate"`
	ViewCount     int        `gorm:"column:view_count" json:"viewCount"`
	DownloadCount int        `gorm:"column:download_count" json:"downloadCount"`
	Status        string     `gorm:"column:status;default:DRAFT" json:"status"`
	ArticleType   string     `gorm:"column:article_type;default:RESEARCH_ARTICLE" json:"articleType"`
	IssueID       *string    `gorm:"column:issue_id" json:"issueId"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at" json:"updatedAt"`

	Issue   *Issue          `gorm:"foreignKey:IssueID" json:"issue,omitempty"`
	Authors []ArticleAuthor `gorm:"foreignKey:ArticleID" json:"authors,omitempty"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// Author represents the authors table. Authors are shared across articles
// through the article_authors join table.
type Author struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Email       string    `gorm:"column:email" json:"email"`
	Affiliation string    `gorm:"column:affiliation" json:"affiliation"`
	Country     string    `gorm:"column:country" json:"country"`
	Orcid       string    `gorm:"column:orcid" json:"orcid"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// ArticleAuthor links an article to an author with its display position.
// The column is named author_order because "order" is a reserved word.
// AuthorOrder is unique within an article and defines byline sequence.
type ArticleAuthor struct {
	ArticleID       string `gorm:"primaryKey;column:article_id;uniqueIndex:idx_article_author_order" json:"articleId"`
	AuthorID        string `gorm:"primaryKey;column:author_id" json:"authorId"`
	AuthorOrder     int    `gorm:"column:author_order;uniqueIndex:idx_article_author_order" json:"order"`
	IsCorresponding bool   `gorm:"column:is_corresponding" json:"isCorresponding"`

	Author Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (ArticleAuthor) TableName() string {
	return "article_authors"
}

// IssueRef is the flattened issue reference attached to article summaries.
type IssueRef struct {
	Volume int `json:"volume"`
	Issue  int `json:"issue"`
}

// ArticleSummary is one entry of GET /api/articles/latest.
type ArticleSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Abstract      string     `json:"abstract"`
	DOI           string     `json:"doi"`
	ViewCount     int        `json:"viewCount"`
	DownloadCount int        `json:"downloadCount"`
	PublishedDate *time.Time `json:"publishedDate"`
	Authors       []string   `json:"authors"`
	Issue         *IssueRef  `json:"issue"`
}

func (a *Article) ToSummary() ArticleSummary {
	authors := make([]string, 0, len(a.Authors))
	for _, aa := range a.Authors {
		authors = append(authors, aa.Author.Name)
	}

	var issue *IssueRef
	if a.Issue != nil {
		issue = &IssueRef{Volume: a.Issue.Volume, Issue: a.Issue.Issue}
	}

	return ArticleSummary{
		ID:            a.ID,
		Title:         a.Title,
		Abstract:      a.Abstract,
		DOI:           a.DOI,
		ViewCount:     a.ViewCount,
		DownloadCount: a.DownloadCount,
		PublishedDate: a.PublishedDate,
		Authors:       authors,
		Issue:         issue,
	}
}

// AuthorDetail is the full author projection nested in the current issue.
type AuthorDetail struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Affiliation     string `json:"affiliation"`
	Country         string `json:"country"`
	Orcid           string `json:"orcid"`
	Order           int    `json:"order"`
	IsCorresponding bool   `json:"isCorresponding"`
}

// ArticleDetail is the expanded article projection nested in the current issue.
type ArticleDetail struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Abstract      string         `json:"abstract"`
	Keywords      string         `json:"keywords"`
	DOI           string         `json:"doi"`
	PageStart     int            `json:"pageStart"`
	PageEnd       int            `json:"pageEnd"`
	ReceivedDate  *time.Time     `json:"receivedDate"`
	AcceptedDate  *time.Time     `json:"acceptedDate"`
	PublishedDate *time.Time     `json:"publishedDate"`
	ViewCount     int            `json:"viewCount"`
	DownloadCount int            `json:"downloadCount"`
	Status        string         `json:"status"`
	ArticleType   string         `json:"articleType"`
	Authors       []AuthorDetail `json:"authors"`
}

func (a *Article) ToDetail() ArticleDetail {
	authors := make([]AuthorDetail, 0, len(a.Authors))
	for _, aa := range a.Authors {
		authors = append(authors, AuthorDetail{
			ID:              aa.Author.ID,
			Name:            aa.Author.Name,
			Email:           aa.Author.Email,
			Affiliation:     aa.Author.Affiliation,
			Country:         aa.Author.Country,
			Orcid:           aa.Author.Orcid,
			Order:           aa.AuthorOrder,
			IsCorresponding: aa.IsCorresponding,
		})
	}

	return ArticleDetail{
		ID:            a.ID,
		Title:         a.Title,
		Abstract:      a.Abstract,
		Keywords:      a.Keywords,
		DOI:           a.DOI,
		PageStart:     a.PageStart,
		PageEnd:       a.PageEnd,
		ReceivedDate:  a.ReceivedDate,
		AcceptedDate:  a.AcceptedDate,
		PublishedDate: a.PublishedDate,
		ViewCount:     a.ViewCount,
		DownloadCount: a.DownloadCount,
		Status:        a.Status,
		ArticleType:   a.ArticleType,
		Authors:       authors,
	}
}
