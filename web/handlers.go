// web/handlers.go
package web

import (
	"log"
	"net/http"
	"time"

	"journal-website-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// PageHandler renders the public pages. Each handler fans out its API calls
// concurrently, waits for all of them to settle, and substitutes the sample
// fallback for any section whose call failed or came back empty. Failures
// are logged; the visitor always gets a fully rendered page.
type PageHandler struct {
	client *Client
}

func NewPageHandler(client *Client) *PageHandler {
	return &PageHandler{client: client}
}

func logFetchError(what string, err error) {
	if err != nil {
		log.Printf("Error fetching %s: %v", what, err)
	}
}

// Home renders the landing page: hero, announcement bar, latest articles,
// call for papers and indexing cards.
func (h *PageHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	journal := fallbackJournal()
	articles := fallbackArticles(time.Now())
	announcements := fallbackAnnouncements()
	cfp := fallbackCallForPapers()
	indexing := fallbackIndexing()

	var g errgroup.Group
	g.Go(func() error {
		if res, err := h.client.Journal(ctx); err != nil {
			logFetchError("journal information", err)
		} else {
			journal = res
		}
		return nil
	})
	g.Go(func() error {
		if res, err := h.client.LatestArticles(ctx); err != nil || len(res) == 0 {
			logFetchError("latest articles", err)
		} else {
			articles = res
		}
		return nil
	})
	g.Go(func() error {
		if res, err := h.client.Announcements(ctx); err != nil || len(res) == 0 {
			logFetchError("announcements", err)
		} else {
			announcements = res
		}
		return nil
	})
	g.Go(func() error {
		if res, err := h.client.CallForPapers(ctx); err != nil || res == nil {
			logFetchError("call for papers", err)
		} else {
			cfp = res
		}
		return nil
	})
	g.Go(func() error {
		if res, err := h.client.Indexing(ctx); err != nil || len(res) == 0 {
			logFetchError("indexing information", err)
		} else {
			indexing = res
		}
		return nil
	})
	_ = g.Wait()

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":         journal.Name,
		"Journal":       journal,
		"Articles":      articles,
		"Announcements": announcements,
		"CallForPapers": cfp,
		"Indexing":      indexing,
	})
}

// About renders the journal profile page.
func (h *PageHandler) About(c *gin.Context) {
	journal := fallbackJournal()
	if res, err := h.client.Journal(c.Request.Context()); err != nil {
		logFetchError("journal information", err)
	} else {
		journal = res
	}

	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title":   "About " + journal.Abbreviation,
		"Journal": journal,
	})
}

// AuthorGuidelines renders the static submission guidelines page.
func (h *PageHandler) AuthorGuidelines(c *gin.Context) {
	c.HTML(http.StatusOK, "author_guidelines.html", gin.H{
		"Title": "Author Guidelines",
	})
}

// CallForPapers renders the open call and the active special issues.
func (h *PageHandler) CallForPapers(c *gin.Context) {
	ctx := c.Request.Context()

	cfp := fallbackCallForPapers()
	specialIssues := fallbackSpecialIssues()

	var g errgroup.Group
	g.Go(func() error {
		if res, err := h.client.CallForPapers(ctx); err != nil || res == nil {
			logFetchError("call for papers", err)
		} else {
			cfp = res
		}
		return nil
	})
	g.Go(func() error {
		if res, err := h.client.SpecialIssues(ctx); err != nil || len(res) == 0 {
			logFetchError("special issues", err)
		} else {
			specialIssues = res
		}
		return nil
	})
	_ = g.Wait()

	c.HTML(http.StatusOK, "call_for_papers.html", gin.H{
		"Title":         "Call for Papers",
		"CallForPapers": cfp,
		"SpecialIssues": specialIssues,
	})
}

// CurrentIssue renders the latest published issue with its articles.
func (h *PageHandler) CurrentIssue(c *gin.Context) {
	issue := fallbackCurrentIssue()
	if res, err := h.client.CurrentIssue(c.Request.Context()); err != nil {
		logFetchError("current issue", err)
	} else {
		issue = res
	}

	c.HTML(http.StatusOK, "current_issue.html", gin.H{
		"Title": issue.Title,
		"Issue": issue,
	})
}

// BoardGroup is one position section on the editorial board page, in rank
// order; groups without members are dropped.
type BoardGroup struct {
	Position string
	Title    string
	Members  []models.BoardMember
}

// EditorialBoard renders the board grouped by position.
func (h *PageHandler) EditorialBoard(c *gin.Context) {
	board := fallbackEditorialBoard()
	if res, err := h.client.EditorialBoard(c.Request.Context()); err != nil || len(res) == 0 {
		logFetchError("editorial board", err)
	} else {
		board = res
	}

	groups := make([]BoardGroup, 0, len(board))
	for _, position := range models.PositionOrder {
		if members := board[position]; len(members) > 0 {
			groups = append(groups, BoardGroup{
				Position: position,
				Title:    PositionTitle(position),
				Members:  members,
			})
		}
	}

	c.HTML(http.StatusOK, "editorial_board.html", gin.H{
		"Title":  "Editorial Board",
		"Groups": groups,
		"Stats":  SummarizeBoard(board),
	})
}
