package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CheckSessionResponse struct {
	LoggedIn bool    `json:"loggedIn"`
	Role     *string `json:"role"`
}
