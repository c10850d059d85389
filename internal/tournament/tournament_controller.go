package tournament

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/pkg/responses"
)

// TournamentController handles tournament and registration HTTP requests.
type TournamentController struct {
	repo TournamentRepository
}

// NewTournamentController creates a new tournament controller.
func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

// GetAll godoc
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Success 200 {array} Tournament
// @Failure 500 {object} responses.MessageResponse
// @Router /tournaments [get]
func (tc *TournamentController) GetAll(c *gin.Context) {
	tournaments, err := tc.repo.GetAllTournaments()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

// Signup godoc
// @Summary Register for a tournament
// @Description A caller who belongs to a team must register as that team; solo signups from team members are rejected.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param signup body SignupRequest true "Signup data"
// @Success 201 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 401 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /signup-tournament [post]
func (tc *TournamentController) Signup(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "Please log in first.")
		return
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	teamID, err := tc.repo.GetUserTeamID(s.UserID)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if MustSignupAsTeam(teamID, req.TeamID) {
		responses.BadRequest(c, "You are in a team and must sign up as a team. Please retry.")
		return
	}

	reg := Registration{
		UserID:       s.UserID,
		TournamentID: req.TournamentID,
		TeamID:       req.TeamID,
	}
	if err := tc.repo.CreateRegistration(&reg); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusCreated, "Successfully signed up for the tournament! Good luck!")
}

// CancelSignup godoc
// @Summary Cancel a tournament registration
// @Description Allowed for the registrant, or for a member of the team whose registrant signed up. Anyone else gets 403.
// @Tags Tournaments
// @Produce json
// @Param tournamentId path int true "Tournament ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 401 {object} responses.MessageResponse
// @Failure 403 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /cancel-tournament-signup/{tournamentId} [delete]
func (tc *TournamentController) CancelSignup(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "Please log in first.")
		return
	}

	tournamentID, err := strconv.ParseUint(c.Param("tournamentId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid tournament ID")
		return
	}

	allowed, err := tc.repo.CanCancelRegistration(uint(tournamentID), s.UserID)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if !allowed {
		responses.Forbidden(c, "Sorry, you do not have permission to cancel this registration.")
		return
	}

	if err := tc.repo.DeleteRegistration(uint(tournamentID), s.UserID); err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Successfully cancelled tournament signup. Sorry to have you leave :(")
}

// AddTournament godoc
// @Summary Create a tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament body AddTournamentRequest true "Tournament data"
// @Success 201 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /add-tournament [post]
func (tc *TournamentController) AddTournament(c *gin.Context) {
	var req AddTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}
	t := Tournament{
		Name:      req.Name,
		StartDate: req.StartDate,
		Location:  req.Location,
	}
	if err := tc.repo.CreateTournament(&t); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Database error.")
		return
	}
	responses.SendMessage(c, http.StatusCreated, "Tournament created successfully!")
}
