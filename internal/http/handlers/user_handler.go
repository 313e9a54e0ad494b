// Auth and profile HTTP handlers: register, login, current user.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/talentlink/go-match-backend/internal/apierr"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token alongside the user.
type LoginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Register creates a new account.
func (h *Handlers) Register(c *gin.Context) error {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	u, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.UserType)
	if err != nil {
		return err
	}

	created(c, u, Message("account created"))
	return nil
}

// Login verifies credentials and returns a signed bearer token.
func (h *Handlers) Login(c *gin.Context) error {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apierr.New(apierr.CodeInvalidInput, "request body is not valid JSON")
	}

	u, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	ok(c, LoginResponse{Token: token, User: u}, Message("login successful"))
	return nil
}

// Me returns the profile of the calling user.
func (h *Handlers) Me(c *gin.Context) error {
	claims, err := requireClaims(c)
	if err != nil {
		return err
	}
	u, err := h.users.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		return err
	}
	ok(c, u, Extra{})
	return nil
}
