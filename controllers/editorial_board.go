// controllers/editorial_board.go
package controllers

import (
	"log"
	"net/http"
	"sort"

	"journal-website-api/config"
	"journal-website-api/models"

	"github.com/gin-gonic/gin"
)

// GetEditorialBoard returns active board members grouped by position.
// Members are ordered by position rank, then start date; positions with no
// active members do not appear as keys.
func GetEditorialBoard(c *gin.Context) {
	var members []models.EditorialBoard
	err := config.DB.
		Where("is_active = ?", true).
		Preload("User").
		Order("start_date ASC").
		Find(&members).Error
	if err != nil {
		log.Printf("Error fetching editorial board: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch editorial board"})
		return
	}

	// Rank ordering is defined by the position enum, not by string order,
	// so it is applied here rather than in SQL.
	sort.SliceStable(members, func(i, j int) bool {
		ri, rj := models.PositionRank(members[i].Position), models.PositionRank(members[j].Position)
		if ri != rj {
			return ri < rj
		}
		return members[i].StartDate.Before(members[j].StartDate)
	})

	grouped := make(map[string][]models.BoardMember)
	for i := range members {
		grouped[members[i].Position] = append(grouped[members[i].Position], members[i].ToMember())
	}

	c.JSON(http.StatusOK, grouped)
}
