package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/pkg/responses"
	"github.com/rpatel-116/uniclash/utils"
)

// UserController handles the admin user-management surface.
type UserController struct {
	repo UserRepository
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// ListRoles godoc
// @Summary List roles the caller may assign
// @Description SuperAdmin sees every role except SuperAdmin; Admin additionally loses Admin.
// @Tags Users
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} responses.MessageResponse
// @Failure 403 {object} responses.MessageResponse
// @Router /roles [get]
func (uc *UserController) ListRoles(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}
	c.JSON(http.StatusOK, AssignableRoles(s.Role))
}

// ListUsers godoc
// @Summary List or search users
// @Tags Users
// @Produce json
// @Param search query string false "Match against name or email"
// @Success 200 {array} UserResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.repo.SearchUsers(c.Query("search"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FilterUserRecord(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// AddUser godoc
// @Summary Create a user with an explicit role
// @Description Admins may not create Admin or SuperAdmin accounts; nobody creates SuperAdmins.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body AddUserRequest true "New user"
// @Success 201 {object} responses.MessageResponse
// @Failure 400 {object} responses.MessageResponse
// @Failure 403 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /add-user [post]
func (uc *UserController) AddUser(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}

	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	if !req.Role.Valid() {
		responses.BadRequest(c, "Invalid role")
		return
	}
	if err := CreateRoleCheck(s.Role, req.Role); err != nil {
		responses.Forbidden(c, err.Error())
		return
	}
	if !utils.ValidEmail(req.Email) {
		responses.BadRequest(c, "Invalid email format")
		return
	}
	if !utils.ValidPassword(req.Password) {
		responses.BadRequest(c, "Password must have 6 characters and contain a letter")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Database error.")
		return
	}

	newUser := User{
		Name:     req.FirstName + " " + req.LastName,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := uc.repo.CreateUser(&newUser); err != nil {
		responses.InternalServerError(c, "Database error.")
		return
	}
	responses.SendMessage(c, http.StatusCreated, "User added successfully!")
}

// EditUser godoc
// @Summary Change a user's role
// @Description Applies the role transition rules: SuperAdmins are untouchable, Admins cannot modify Admins or grant admin roles, nobody changes their own role.
// @Tags Users
// @Accept json
// @Produce json
// @Param userId path int true "Target user ID"
// @Param role body EditUserRequest true "New role"
// @Success 200 {object} responses.MessageResponse
// @Failure 403 {object} responses.MessageResponse
// @Failure 404 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /edit-user/{userId} [put]
func (uc *UserController) EditUser(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var req EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}

	target, err := uc.repo.GetUserByID(uint(targetID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if target == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := ChangeRoleCheck(s.Role, s.UserID, target.Role, target.ID, req.Role); err != nil {
		responses.Forbidden(c, err.Error())
		return
	}

	if err := uc.repo.UpdateUserRole(target.ID, req.Role); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	responses.SendMessage(c, http.StatusOK, "User role updated successfully")
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Same precedence as role edits; on success the account and any team membership rows go together.
// @Tags Users
// @Produce json
// @Param userId path int true "Target user ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 403 {object} responses.MessageResponse
// @Failure 404 {object} responses.MessageResponse
// @Failure 500 {object} responses.MessageResponse
// @Router /delete-user/{userId} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	s, ok := mw.GetSession(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	target, err := uc.repo.GetUserByID(uint(targetID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if target == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := DeleteCheck(s.Role, s.UserID, target.Role, target.ID); err != nil {
		responses.Forbidden(c, err.Error())
		return
	}

	if err := uc.repo.DeleteUserWithMembership(target.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	responses.SendMessage(c, http.StatusOK, "User deleted successfully!")
}
