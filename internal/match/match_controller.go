package match

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-116/uniclash/pkg/responses"
)

// MatchController handles schedule, result and report HTTP requests.
type MatchController struct {
	repo MatchRepository
}

// NewMatchController creates a new match controller.
func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// GetMatches godoc
// @Summary List all matches
// @Tags Matches
// @Produce json
// @Success 200 {array} Match
// @Failure 500 {object} responses.MessageResponse
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	matches, err := mc.repo.GetAllMatches()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetSchedules godoc
// @Summary List scheduled matches with team names
// @Tags Matches
// @Produce json
// @Param limit query int false "Page size" default(6)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} ScheduleRow
// @Failure 500 {object} responses.MessageResponse
// @Router /schedules [get]
func (mc *MatchController) GetSchedules(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 {
		limit = 6
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	rows, repoErr := mc.repo.GetSchedules(limit, offset)
	if repoErr != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AddSchedule godoc
// @Summary Schedule a tournament slot
// @Tags Matches
// @Accept json
// @Produce json
// @Param schedule body AddScheduleRequest true "Schedule data"
// @Success 201 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /add-schedule [post]
func (mc *MatchController) AddSchedule(c *gin.Context) {
	var req AddScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}
	s := Schedule{
		TournamentID:  req.TournamentID,
		ScheduledDate: req.MatchDate,
	}
	if err := mc.repo.CreateSchedule(&s); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	responses.SendMessage(c, http.StatusCreated, "Schedule added successfully!")
}

// PostResults godoc
// @Summary Post a match result
// @Description Persists both scores and the winner derived from the match's own team references. A drawn match gets no winner.
// @Tags Matches
// @Accept json
// @Produce json
// @Param result body PostResultsRequest true "Scores"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 404 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /post-results [post]
func (mc *MatchController) PostResults(c *gin.Context) {
	var req PostResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ScoreTeam1 == nil || req.ScoreTeam2 == nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	err := mc.repo.PostResult(req.MatchID, *req.ScoreTeam1, *req.ScoreTeam2)
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(c, "Match")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Results posted successfully!")
}

// GenerateReport godoc
// @Summary Stream the tournament report as CSV
// @Description One row per team: name, university, matches played, wins, ordered by wins.
// @Tags Matches
// @Produce text/csv
// @Success 200 {string} string "CSV report"
// @Failure 500 {object} responses.MessageResponse
// @Router /generate-report [get]
func (mc *MatchController) GenerateReport(c *gin.Context) {
	rows, err := mc.repo.GetStandings()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate report"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=tournament_report.csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Team Name", "University Name", "Matches Played", "Wins"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.TeamName,
			row.UniversityName,
			strconv.FormatInt(row.MatchesPlayed, 10),
			strconv.FormatInt(row.Wins, 10),
		})
	}
	w.Flush()
}
