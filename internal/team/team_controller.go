package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/pkg/responses"
)

// TeamController handles team and roster HTTP requests.
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// GetAllTeams godoc
// @Summary List all teams with their university names
// @Tags Teams
// @Produce json
// @Success 200 {array} TeamRow
// @Failure 500 {object} responses.MessageResponse
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	rows, err := tc.repo.GetAllTeams()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetTeam godoc
// @Summary Fetch a team by ID
// @Tags Teams
// @Produce json
// @Param id query int true "Team ID"
// @Success 200 {object} Team
// @Failure 400 {object} responses.MessageResponse
// @Failure 404 {object} responses.MessageResponse
// @Router /team [get]
func (tc *TeamController) GetTeam(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		responses.BadRequest(c, "Missing team ID")
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	c.JSON(http.StatusOK, t)
}

// SearchTeams godoc
// @Summary Search teams by team or university name
// @Tags Teams
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} TeamRow
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /search-teams [get]
func (tc *TeamController) SearchTeams(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		responses.BadRequest(c, "Search query is required.")
		return
	}
	rows, err := tc.repo.SearchTeams(query)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	// empty result is still a 200 with an empty list
	c.JSON(http.StatusOK, rows)
}

// GetTeamMembers godoc
// @Summary List a team's roster
// @Tags Teams
// @Produce json
// @Param teamId query int true "Team ID"
// @Success 200 {array} MemberRow
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /team-members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	teamIDStr := c.Query("teamId")
	if teamIDStr == "" {
		responses.BadRequest(c, "Missing team ID")
		return
	}
	teamID, err := strconv.ParseUint(teamIDStr, 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	rows, err := tc.repo.GetTeamMembers(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCollegeRoster godoc
// @Summary List a college's teams with their players
// @Tags Teams
// @Produce json
// @Param name query string true "College name"
// @Success 200 {array} CollegeRosterRow
// @Failure 500 {object} responses.MessageResponse
// @Router /teams-for-college [get]
func (tc *TeamController) GetCollegeRoster(c *gin.Context) {
	rows, err := tc.repo.GetCollegeRoster(c.Query("name"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AddTeam godoc
// @Summary Create a team under a university
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body AddTeamRequest true "Team data"
// @Success 201 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /add-team [post]
func (tc *TeamController) AddTeam(c *gin.Context) {
	var req AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}
	t := Team{Name: req.Name, UniversityID: req.UniversityID}
	if err := tc.repo.CreateTeam(&t); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusCreated, "Team added successfully!")
}

// EditTeam godoc
// @Summary Edit a team's fields and roster in one transaction
// @Description Renames/re-parents when those fields are supplied, reassigns the single Leader when newLeaderId is set, and removes a member (resetting their global role) when memberToDeleteId is set. All or nothing.
// @Tags Teams
// @Accept json
// @Produce json
// @Param teamId path int true "Team ID"
// @Param edit body EditTeamRequest true "Edit data"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /edit-team/{teamId} [put]
func (tc *TeamController) EditTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("teamId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	var req EditTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	if err := tc.repo.EditTeam(uint(teamID), req); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Team updated successfully!")
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags Teams
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /delete-team/{teamId} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("teamId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}
	if err := tc.repo.DeleteTeam(uint(teamID)); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Team deleted successfully!")
}

// LeaveTeam godoc
// @Summary Leave the caller's team
// @Description Players only. Clears the membership and resets the caller's role to User; leadership is not reassigned.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.MessageResponse
// @Failure 401 {object} responses.MessageResponse
// @Failure 403 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /leave-team [delete]
func (tc *TeamController) LeaveTeam(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "Please log in first.")
		return
	}
	if err := tc.repo.LeaveTeam(s.UserID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	responses.SendMessage(c, http.StatusOK, "You left the team successfully!")
}
