package handlers

import (
	"net/http"
	"strings"

	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/supabase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	client *supabase.Client
}

func NewAuthHandler(client *supabase.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

// Login godoc
// @Summary     Admin sign-in
// @Description Signs in with email and password against Supabase Auth and returns the session tokens.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "auth not available"})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email and password are required"})
		return
	}

	session, err := h.client.Supabase.SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		// One generic message for every failure mode, so callers cannot
		// probe which accounts exist.
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	resp := models.SessionResponse{
		AccessToken:  session.AccessToken,
		TokenType:    session.TokenType,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    int(session.ExpiresIn),
	}
	resp.UserID = session.User.ID.String()
	resp.Email = session.User.Email

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary     Admin sign-out
// @Description Revokes the caller's Supabase session.
// @Tags        auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} map[string]string
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "auth not available"})
		return
	}

	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization header"})
		return
	}

	if err := h.client.Supabase.Auth.WithToken(token).Logout(); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Session godoc
// @Summary     Current session
// @Description Returns the user behind the caller's Supabase token.
// @Tags        auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "auth not available"})
		return
	}

	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization header"})
		return
	}

	user, err := h.client.Supabase.Auth.WithToken(token).GetUser()
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid session"})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID.String(),
		Email:       user.Email,
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
