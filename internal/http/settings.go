package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/settings"
)

// SettingsController handles the school configuration endpoints.
type SettingsController struct {
	settings *settings.Service
}

// NewSettingsController creates a new SettingsController.
func NewSettingsController(settingsService *settings.Service) *SettingsController {
	return &SettingsController{settings: settingsService}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	current, err := sc.settings.Get()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, current)
}

type updateSchoolNameRequest struct {
	SchoolNameArabic string `json:"school_name_arabic" binding:"required"`
}

func (sc *SettingsController) UpdateSchoolName(c *gin.Context) {
	var req updateSchoolNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.settings.UpdateSchoolName(req.SchoolNameArabic, auth.GetUserID(c)); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "school name updated"})
}

type updateLogoPathRequest struct {
	SchoolLogoPath *string `json:"school_logo_path"`
}

func (sc *SettingsController) UpdateLogoPath(c *gin.Context) {
	var req updateLogoPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.settings.UpdateLogoPath(req.SchoolLogoPath, auth.GetUserID(c)); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "logo path updated"})
}

type updatePledgeTextRequest struct {
	PledgeText string `json:"pledge_text" binding:"required"`
}

func (sc *SettingsController) UpdatePledgeText(c *gin.Context) {
	var req updatePledgeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.settings.UpdatePledgeText(req.PledgeText, auth.GetUserID(c)); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "pledge text updated"})
}
