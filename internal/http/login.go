package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mybooksapp/mybooks/internal/auth"
)

type LoginController struct {
	auth     *auth.Service
	sessions *auth.SessionManager
}

// NewLoginController creates a login controller. The session manager may be
// nil, in which case no session cookie is issued on login.
func NewLoginController(authService *auth.Service, sessions *auth.SessionManager) *LoginController {
	return &LoginController{
		auth:     authService,
		sessions: sessions,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// Login verifies credentials, creating the account on a first-time username.
// Responds 201 for a freshly created account and 200 for an existing one.
func (lc *LoginController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, created, err := lc.auth.Authenticate(req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrUsernameRequired), errors.Is(err, auth.ErrPasswordRequired):
		respondBadRequest(c, err.Error())
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "login")
		return
	}

	if lc.sessions != nil {
		if err := lc.sessions.CreateSession(c.Request, user); err != nil {
			respondInternalError(c, err, "login session")
			return
		}
	}

	if created {
		c.JSON(http.StatusCreated, loginResponse{
			Message: "Account created and login successful",
			User:    user,
		})
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    user,
	})
}

// Logout destroys the current session, if any.
func (lc *LoginController) Logout(c *gin.Context) {
	if lc.sessions != nil {
		if err := lc.sessions.DestroySession(c.Request); err != nil {
			respondInternalError(c, err, "logout")
			return
		}
	}
	respondSuccess(c, "Logged out")
}
