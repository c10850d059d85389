package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the standard {message} body used by mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse carries an explicit success flag alongside the message; only
// logout uses it.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendMessage sends a plain {message} response.
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// SendError sends a {message} error response and aborts the handler chain.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, MessageResponse{Message: message})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authenticated"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, message)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message)
}

// InternalServerError sends a 500 response with the canonical store-failure message.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Database error. Please try again later."
	}
	SendError(c, http.StatusInternalServerError, message)
}
