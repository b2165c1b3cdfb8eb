// models/editorial_board.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Editorial board positions, in display rank order.
const (
	PositionEditorInChief   = "EDITOR_IN_CHIEF"
	PositionAssociateEditor = "ASSOCIATE_EDITOR"
	PositionAssistantEditor = "ASSISTANT_EDITOR"
	PositionAdvisoryBoard   = "ADVISORY_BOARD"
	PositionReviewer        = "REVIEWER"
)

// PositionOrder lists board positions in their display rank.
var PositionOrder = []string{
	PositionEditorInChief,
	PositionAssociateEditor,
	PositionAssistantEditor,
	PositionAdvisoryBoard,
	PositionReviewer,
}

// PositionRank returns the display rank of a position. Unknown positions
// sort last.
func PositionRank(position string) int {
	for i, p := range PositionOrder {
		if p == position {
			return i
		}
	}
	return len(PositionOrder)
}

// User represents the users table. Only board members reference it on the
// public site; accounts are managed by the out-of-scope editorial workflow.
type User struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// EditorialBoard represents the editorial_board_members table.
type EditorialBoard struct {
	ID          string     `gorm:"primaryKey;column:id" json:"id"`
	UserID      string     `gorm:"column:user_id" json:"userId"`
	JournalID   *string    `gorm:"column:journal_id" json:"journalId"`
	Position    string     `gorm:"column:position" json:"position"`
	Department  string     `gorm:"column:department" json:"department"`
	Institution string     `gorm:"column:institution" json:"institution"`
	Country     string     `gorm:"column:country" json:"country"`
	Bio         string     `gorm:"column:bio" json:"bio"`
	StartDate   time.Time  `gorm:"column:start_date" json:"startDate"`
	EndDate     *time.Time `gorm:"column:end_date" json:"endDate"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EditorialBoard) TableName() string {
	return "editorial_board_members"
}

func (e *EditorialBoard) BeforeCreate(*gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// BoardMember is one member projection in the grouped editorial board response.
type BoardMember struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Position    string     `json:"position"`
	Department  string     `json:"department"`
	Institution string     `json:"institution"`
	Country     string     `json:"country"`
	Bio         string     `json:"bio"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    bool       `json:"isActive"`
}

func (e *EditorialBoard) ToMember() BoardMember {
	return BoardMember{
		ID:          e.ID,
		Name:        e.User.Name,
		Email:       e.User.Email,
		Position:    e.Position,
		Department:  e.Department,
		Institution: e.Institution,
		Country:     e.Country,
		Bio:         e.Bio,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		IsActive:    e.IsActive,
	}
}
