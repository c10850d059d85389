package tournament

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/internal/session"
	"github.com/rpatel-116/uniclash/internal/user"
)

type cancelCall struct {
	tournamentID uint
	userID       uint
}

type fakeTournamentRepo struct {
	userTeamID  *uint
	allowCancel bool
	regs        []Registration
	deletes     []cancelCall
}

func (r *fakeTournamentRepo) CreateTournament(t *Tournament) error { return nil }

func (r *fakeTournamentRepo) GetAllTournaments() ([]Tournament, error) { return nil, nil }

func (r *fakeTournamentRepo) GetUserTeamID(userID uint) (*uint, error) {
	return r.userTeamID, nil
}

func (r *fakeTournamentRepo) CreateRegistration(reg *Registration) error {
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *fakeTournamentRepo) CanCancelRegistration(tournamentID, userID uint) (bool, error) {
	return r.allowCancel, nil
}

func (r *fakeTournamentRepo) DeleteRegistration(tournamentID, userID uint) error {
	r.deletes = append(r.deletes, cancelCall{tournamentID, userID})
	return nil
}

func newTournamentTestServer(repo TournamentRepository, sessions *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewTournamentController(repo)

	r := gin.New()
	r.Use(mw.SessionMiddleware(sessions, "uniclash_sid"))
	r.POST("/signup-tournament", controller.Signup)
	r.DELETE("/cancel-tournament-signup/:tournamentId", controller.CancelSignup)
	return r
}

func loginAs(sessions *session.Store, userID uint, role user.Role) *http.Cookie {
	token := sessions.Create(userID, "tester", role)
	return &http.Cookie{Name: "uniclash_sid", Value: token}
}

func do(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCancelSignupForbiddenForOutsider(t *testing.T) {
	repo := &fakeTournamentRepo{allowCancel: false}
	sessions := session.NewStore(time.Hour)
	r := newTournamentTestServer(repo, sessions)

	ck := loginAs(sessions, 7, user.RoleUser)
	w := do(r, http.MethodDelete, "/cancel-tournament-signup/4", "", ck)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Sorry, you do not have permission to cancel this registration.")
	// nothing was deleted on the denied path
	assert.Empty(t, repo.deletes)
}

func TestCancelSignupAllowedForRegistrant(t *testing.T) {
	repo := &fakeTournamentRepo{allowCancel: true}
	sessions := session.NewStore(time.Hour)
	r := newTournamentTestServer(repo, sessions)

	ck := loginAs(sessions, 7, user.RoleUser)
	w := do(r, http.MethodDelete, "/cancel-tournament-signup/4", "", ck)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully cancelled tournament signup. Sorry to have you leave :(")
	require.Len(t, repo.deletes, 1)
	assert.Equal(t, cancelCall{tournamentID: 4, userID: 7}, repo.deletes[0])
}

func TestCancelSignupRequiresLogin(t *testing.T) {
	repo := &fakeTournamentRepo{allowCancel: true}
	r := newTournamentTestServer(repo, session.NewStore(time.Hour))

	w := do(r, http.MethodDelete, "/cancel-tournament-signup/4", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, repo.deletes)
}

func TestSignupRejectsSoloFromTeamMember(t *testing.T) {
	teamID := uint(3)
	repo := &fakeTournamentRepo{userTeamID: &teamID}
	sessions := session.NewStore(time.Hour)
	r := newTournamentTestServer(repo, sessions)

	ck := loginAs(sessions, 7, user.RolePlayer)
	w := do(r, http.MethodPost, "/signup-tournament", `{"tournamentId":1}`, ck)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You are in a team and must sign up as a team. Please retry.")
	assert.Empty(t, repo.regs)
}

func TestSignupStoresRegistration(t *testing.T) {
	teamID := uint(3)
	repo := &fakeTournamentRepo{userTeamID: &teamID}
	sessions := session.NewStore(time.Hour)
	r := newTournamentTestServer(repo, sessions)

	ck := loginAs(sessions, 7, user.RolePlayer)
	w := do(r, http.MethodPost, "/signup-tournament", `{"tournamentId":1,"teamId":3}`, ck)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully signed up for the tournament! Good luck!")
	require.Len(t, repo.regs, 1)
	reg := repo.regs[0]
	assert.Equal(t, uint(7), reg.UserID)
	assert.Equal(t, uint(1), reg.TournamentID)
	require.NotNil(t, reg.TeamID)
	assert.Equal(t, teamID, *reg.TeamID)
}
