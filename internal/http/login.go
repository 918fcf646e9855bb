package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahfiz/listening/internal/auth"
)

// LoginController handles session-based authentication.
type LoginController struct {
	authService    *auth.Service
	sessionManager *auth.SessionManager
}

// NewLoginController creates a new LoginController.
func NewLoginController(authService *auth.Service, sessionManager *auth.SessionManager) *LoginController {
	return &LoginController{
		authService:    authService,
		sessionManager: sessionManager,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credentials and opens a session. Bad credentials and
// inactive accounts both produce the same response.
func (lc *LoginController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	ip := c.ClientIP()
	user, err := lc.authService.Authenticate(req.Username, req.Password, &ip)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if err := lc.sessionManager.CreateSession(c.Request, user); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"user": user})
}

// Logout destroys the current session.
func (lc *LoginController) Logout(c *gin.Context) {
	if err := lc.sessionManager.DestroySession(c.Request); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": "failed to destroy session"})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Profile returns the authenticated user.
func (lc *LoginController) Profile(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == uuid.Nil {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user, err := lc.authService.GetUserByID(userID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"user": user})
}
