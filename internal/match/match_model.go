package match

import (
	"time"

	"gorm.io/gorm"
)

// Match is a fixture between two teams. WinnerID stays nil until results are
// posted, and stays nil for a drawn match.
type Match struct {
	gorm.Model
	Team1ID    uint  `json:"team1_id" gorm:"not null"`
	Team2ID    uint  `json:"team2_id" gorm:"not null"`
	ScoreTeam1 int   `json:"score_team1"`
	ScoreTeam2 int   `json:"score_team2"`
	WinnerID   *uint `json:"winner_id"`
}

// Schedule links a match to a tournament slot.
type Schedule struct {
	gorm.Model
	TournamentID  uint      `json:"tournament_id" gorm:"index"`
	MatchID       uint      `json:"match_id" gorm:"index"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// ScheduleRow is the joined shape the schedule listing returns.
type ScheduleRow struct {
	ScheduleID    uint      `json:"ScheduleID"`
	MatchID       uint      `json:"MatchID"`
	Team1ID       uint      `json:"Team1ID"`
	Team2ID       uint      `json:"Team2ID"`
	Team1Name     string    `json:"Team1Name"`
	Team2Name     string    `json:"Team2Name"`
	ScheduledDate time.Time `json:"ScheduledDate"`
}

// StandingRow is one line of the tournament report.
type StandingRow struct {
	TeamName       string `json:"TeamName"`
	UniversityName string `json:"UniversityName"`
	MatchesPlayed  int64  `json:"MatchesPlayed"`
	Wins           int64  `json:"Wins"`
}

type AddScheduleRequest struct {
	TournamentID uint      `json:"tournamentId" binding:"required"`
	MatchDate    time.Time `json:"matchDate" binding:"required"`
}

type PostResultsRequest struct {
	MatchID    uint `json:"matchId" binding:"required"`
	ScoreTeam1 *int `json:"scoreTeam1" binding:"required"`
	ScoreTeam2 *int `json:"scoreTeam2" binding:"required"`
}

// DeriveWinner computes the winning team reference from the match's own
// stored team IDs, never from anything client-supplied. The strictly higher
// score wins; a tie has no winner.
func DeriveWinner(m *Match, score1, score2 int) *uint {
	if score1 > score2 {
		winner := m.Team1ID
		return &winner
	}
	if score2 > score1 {
		winner := m.Team2ID
		return &winner
	}
	return nil
}
