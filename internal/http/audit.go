package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditrepo "github.com/tahfiz/listening/internal/database/audit"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 500
)

// AuditController serves the append-only audit trail.
type AuditController struct {
	audit *auditrepo.Repository
}

// NewAuditController creates a new AuditController.
func NewAuditController(audit *auditrepo.Repository) *AuditController {
	return &AuditController{audit: audit}
}

// GetEntries returns a page of audit entries, newest first.
func (ac *AuditController) GetEntries(c *gin.Context) {
	limit := defaultAuditPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxAuditPageSize {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = parsed
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "offset must be non-negative"})
			return
		}
		offset = parsed
	}

	entries, total, err := ac.audit.GetEntries(limit, offset)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetByEntity returns all audit entries for one entity.
func (ac *AuditController) GetByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "invalid entity id"})
		return
	}

	entries, err := ac.audit.GetByEntity(c.Param("type"), entityID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}
