package handlers

import (
	"net/http"

	"github.com/botboss/botboss-api/internal/dtos"
	"github.com/botboss/botboss-api/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Signup is the POST /api/signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Signup(req)
	if err != nil {
		respondError(c, err, "Signup failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully!",
		"user":    user.Sanitized(),
	})
}

// Login is the POST /api/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"user":    user.Sanitized(),
	})
}

// ListUsers is the GET /api/users endpoint (testing only, passwords are
// stripped either way)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		respondError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}
