package tournament

import (
	"time"

	"gorm.io/gorm"
)

// Tournament is a scheduled competition.
type Tournament struct {
	gorm.Model
	Name      string    `json:"name" gorm:"not null"`
	StartDate time.Time `json:"start_date"`
	Location  string    `json:"location"`
}

// Registration ties a participant, solo or with their team, to a tournament.
type Registration struct {
	gorm.Model
	UserID       uint  `json:"user_id" gorm:"index"`
	TournamentID uint  `json:"tournament_id" gorm:"index"`
	TeamID       *uint `json:"team_id" gorm:"index"`
}

type SignupRequest struct {
	TournamentID uint  `json:"tournamentId" binding:"required"`
	TeamID       *uint `json:"teamId"`
}

type AddTournamentRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	Location  string    `json:"location"`
}

// MustSignupAsTeam is the solo-vs-team consistency rule: a user who belongs to
// a team may not register individually for a tournament.
func MustSignupAsTeam(userTeamID *uint, requestTeamID *uint) bool {
	return userTeamID != nil && requestTeamID == nil
}
