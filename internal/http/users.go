package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/entities"
	"github.com/tahfiz/listening/internal/settings"
	"github.com/tahfiz/listening/internal/users"
)

// UsersController handles user management endpoints.
type UsersController struct {
	users       *users.Service
	authService *auth.Service
	settings    *settings.Service
}

// NewUsersController creates a new UsersController.
func NewUsersController(userService *users.Service, authService *auth.Service, settingsService *settings.Service) *UsersController {
	return &UsersController{
		users:       userService,
		authService: authService,
		settings:    settingsService,
	}
}

func (uc *UsersController) GetAllUsers(c *gin.Context) {
	all, err := uc.users.GetAll()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"users": all, "count": len(all)})
}

func (uc *UsersController) GetTeachers(c *gin.Context) {
	teachers, err := uc.users.GetTeachers()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"teachers": teachers, "count": len(teachers)})
}

func (uc *UsersController) GetStudents(c *gin.Context) {
	students, err := uc.users.GetStudents()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"students": students, "count": len(students)})
}

func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, user)
}

func (uc *UsersController) CreateUser(c *gin.Context) {
	var input users.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.Create(input, auth.GetUserID(c))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, user)
}

func (uc *UsersController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input users.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.Update(id, input, auth.GetUserID(c))
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, user)
}

func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if id == auth.GetUserID(c) {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}
	if err := uc.users.Delete(id, auth.GetUserID(c)); err != nil {
		respondUserError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "user deleted"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword lets the authenticated user rotate their own password.
func (uc *UsersController) ChangePassword(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == uuid.Nil {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := uc.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "password changed"})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword sets a new password for another user without their current
// one.
func (uc *UsersController) ResetPassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	done, err := uc.authService.ResetPassword(id, req.NewPassword, auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !done {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "password reset"})
}

func (uc *UsersController) GetUserStats(c *gin.Context) {
	counts, err := uc.users.CountsByRole()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"admins":   counts[entities.UserRoleAdmin],
		"teachers": counts[entities.UserRoleTeacher],
		"students": counts[entities.UserRoleStudent],
	})
}

// GetPledge returns the pledge text together with the caller's acceptance
// state.
func (uc *UsersController) GetPledge(c *gin.Context) {
	text, err := uc.settings.GetPledgeText()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	accepted := false
	if userID := auth.GetUserID(c); userID != uuid.Nil {
		accepted, err = uc.users.HasAcceptedPledge(userID)
		if err != nil && !errors.Is(err, users.ErrUserNotFound) {
			c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.IndentedJSON(http.StatusOK, gin.H{"pledge_text": text, "accepted": accepted})
}

// AcceptPledge records the authenticated student's acceptance.
func (uc *UsersController) AcceptPledge(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == uuid.Nil {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := uc.users.AcceptPledge(userID); err != nil {
		if errors.Is(err, users.ErrNotStudent) {
			c.IndentedJSON(http.StatusForbidden, gin.H{"error": "only students accept the pledge"})
			return
		}
		respondUserError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "pledge accepted"})
}

// parseID reads the :id path parameter as a UUID, responding with 400 on
// garbage.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondUserError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, users.ErrUsernameExists), errors.Is(err, users.ErrIDNumberExists):
		c.IndentedJSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErrs):
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
