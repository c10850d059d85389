package team

import (
	"time"

	"gorm.io/gorm"
)

// Team-scoped role tags on a Player row. A team has at most one Leader.
const (
	RoleLeader = "Leader"
	RoleMember = "Member"
)

// Team is a college roster competing in tournaments.
type Team struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null;index"`
	UniversityID uint   `json:"university_id" gorm:"index;not null"`
}

// Player links a user to a team with a team-scoped role tag. A user belongs
// to at most one team at a time.
type Player struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex"`
	TeamID   uint   `json:"team_id" gorm:"index"`
	Role     string `json:"role" gorm:"type:varchar(10);default:'Member'"`
	ImageURL string `json:"image_url"`
}

// TeamRow is the joined shape the team listing and search endpoints return.
type TeamRow struct {
	TeamID         uint      `json:"TeamID"`
	Name           string    `json:"Name"`
	UniversityID   uint      `json:"UniversityID"`
	UniversityName string    `json:"UniversityName"`
	CreatedDate    time.Time `json:"CreatedDate"`
}

// MemberRow is one roster entry with the member's display name.
type MemberRow struct {
	UserID uint   `json:"UserID"`
	Name   string `json:"Name"`
	Role   string `json:"Role"`
}

// CollegeRosterRow is one row of the teams-and-players listing for a college.
type CollegeRosterRow struct {
	Name       string  `json:"Name"`
	TeamID     uint    `json:"TeamID"`
	UserID     *uint   `json:"UserID"`
	PlayerName *string `json:"PlayerName"`
	ImageURL   *string `json:"ImageURL"`
	Role       *string `json:"Role"`
}

type AddTeamRequest struct {
	Name         string `json:"name" binding:"required"`
	UniversityID uint   `json:"universityId" binding:"required"`
}

// EditTeamRequest carries the optional combination of roster edits applied in
// one transaction.
type EditTeamRequest struct {
	Name             string `json:"name"`
	UniversityID     uint   `json:"universityId"`
	NewLeaderID      *uint  `json:"newLeaderId"`
	MemberToDeleteID *uint  `json:"memberToDeleteId"`
}
