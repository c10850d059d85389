package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpatel-116/uniclash/config"
	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/internal/session"
	"github.com/rpatel-116/uniclash/internal/user"
	"github.com/rpatel-116/uniclash/pkg/responses"
	"github.com/rpatel-116/uniclash/utils"
)

// AuthController handles login, signup and session lifecycle requests.
type AuthController struct {
	repo      AuthRepository
	sessions  *session.Store
	appConfig *config.Config
}

// NewAuthController creates a new auth controller.
func NewAuthController(repo AuthRepository, sessions *session.Store, appConfig *config.Config) *AuthController {
	return &AuthController{
		repo:      repo,
		sessions:  sessions,
		appConfig: appConfig,
	}
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := ac.appConfig.App.Env == "production"
	c.SetCookie(ac.appConfig.Session.CookieName, token, maxAge, "/", "", secure, true)
}

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials, creates a server-side session and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} responses.MessageResponse "Login successful"
// @Failure 400 {object} responses.MessageResponse "Missing fields"
// @Failure 401 {object} responses.MessageResponse "Invalid credentials"
// @Failure 500 {object} responses.MessageResponse "Store failure"
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		responses.BadRequest(c, "Please fill all fields.")
		return
	}

	u, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	// same message for unknown email and bad password
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid email or password. Please retry.")
		return
	}

	token := ac.sessions.Create(u.ID, u.Name, u.Role)
	ac.setSessionCookie(c, token, ac.appConfig.Session.TTLHours*3600)
	responses.SendMessage(c, http.StatusOK, "Login successful!")
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user with the baseline User role after validating email and password format.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body SignupRequest true "Signup data"
// @Success 201 {object} responses.MessageResponse "User registered"
// @Failure 400 {object} responses.MessageResponse "Validation failure or duplicate email"
// @Failure 500 {object} responses.MessageResponse "Store failure"
// @Router /signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		responses.BadRequest(c, "Please fill all of the fields.")
		return
	}

	if !utils.ValidEmail(req.Email) {
		responses.BadRequest(c, "Invalid email format. Please retry.")
		return
	}
	if !utils.ValidPassword(req.Password) {
		responses.BadRequest(c, "Password must have 6 characters and contain a letter.")
		return
	}

	existing, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	if existing != nil {
		responses.BadRequest(c, "Email already in use. Try logging in.")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}

	newUser := user.User{
		Name:     req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     user.RoleUser,
	}
	if err := ac.repo.CreateUser(&newUser); err != nil {
		responses.InternalServerError(c, "")
		return
	}

	responses.SendMessage(c, http.StatusCreated, "User registered successfully!")
}

// Logout godoc
// @Summary Destroy the current session
// @Description Invalidates the server-side session and clears the cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.StatusResponse "Logged out"
// @Router /logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	if token, ok := mw.GetSessionToken(c); ok {
		ac.sessions.Destroy(token)
	}
	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, responses.StatusResponse{Success: true, Message: "Logged out successfully!"})
}

// CheckSession godoc
// @Summary Report login state
// @Produce json
// @Success 200 {object} CheckSessionResponse
// @Router /check-session [get]
func (ac *AuthController) CheckSession(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		c.JSON(http.StatusOK, CheckSessionResponse{LoggedIn: false, Role: nil})
		return
	}
	role := string(s.Role)
	c.JSON(http.StatusOK, CheckSessionResponse{LoggedIn: true, Role: &role})
}

// UserInfo godoc
// @Summary Return the session identity
// @Produce json
// @Success 200 {object} user.ProfileResponse
// @Failure 401 {object} responses.MessageResponse "Not authenticated"
// @Router /user-info [get]
func (ac *AuthController) UserInfo(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, user.ProfileResponse{
		UserID: s.UserID,
		Name:   s.Username,
		Role:   s.Role,
	})
}
