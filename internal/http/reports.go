package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tahfiz/listening/internal/auth"
	"github.com/tahfiz/listening/internal/entities"
	"github.com/tahfiz/listening/internal/reports"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"

	queryDateLayout = "2006-01-02"
)

// ReportsController serves report JSON and file exports.
type ReportsController struct {
	reports *reports.Service
}

// NewReportsController creates a new ReportsController.
func NewReportsController(reportService *reports.Service) *ReportsController {
	return &ReportsController{reports: reportService}
}

func (rc *ReportsController) StudentProgress(c *gin.Context) {
	id, from, to, ok := rc.studentRequest(c)
	if !ok {
		return
	}
	report, err := rc.reports.StudentProgress(id, from, to)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, report)
}

func (rc *ReportsController) StudentProgressExcel(c *gin.Context) {
	id, from, to, ok := rc.studentRequest(c)
	if !ok {
		return
	}
	data, err := rc.reports.StudentProgressExcel(id, from, to)
	if err != nil {
		respondReportError(c, err)
		return
	}
	sendAttachment(c, data, excelContentType, fmt.Sprintf("student-progress-%s.xlsx", id))
}

func (rc *ReportsController) StudentProgressPDF(c *gin.Context) {
	id, from, to, ok := rc.studentRequest(c)
	if !ok {
		return
	}
	data, err := rc.reports.StudentProgressPDF(id, from, to)
	if err != nil {
		respondReportError(c, err)
		return
	}
	sendAttachment(c, data, pdfContentType, fmt.Sprintf("student-progress-%s.pdf", id))
}

func (rc *ReportsController) TeacherActivity(c *gin.Context) {
	id, from, to, ok := reportRequest(c)
	if !ok {
		return
	}
	report, err := rc.reports.TeacherActivity(id, from, to)
	if err != nil {
		respondReportError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, report)
}

func (rc *ReportsController) TeacherActivityExcel(c *gin.Context) {
	id, from, to, ok := reportRequest(c)
	if !ok {
		return
	}
	data, err := rc.reports.TeacherActivityExcel(id, from, to)
	if err != nil {
		respondReportError(c, err)
		return
	}
	sendAttachment(c, data, excelContentType, fmt.Sprintf("teacher-activity-%s.xlsx", id))
}

func (rc *ReportsController) TeacherActivityPDF(c *gin.Context) {
	id, from, to, ok := reportRequest(c)
	if !ok {
		return
	}
	data, err := rc.reports.TeacherActivityPDF(id, from, to)
	if err != nil {
		respondReportError(c, err)
		return
	}
	sendAttachment(c, data, pdfContentType, fmt.Sprintf("teacher-activity-%s.pdf", id))
}

func (rc *ReportsController) SystemSummary(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	report, err := rc.reports.SystemSummary(from, to)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, report)
}

func (rc *ReportsController) SystemSummaryExcel(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	data, err := rc.reports.SystemSummaryExcel(from, to)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sendAttachment(c, data, excelContentType, "system-summary.xlsx")
}

func (rc *ReportsController) SystemSummaryPDF(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}
	data, err := rc.reports.SystemSummaryPDF(from, to)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sendAttachment(c, data, pdfContentType, "system-summary.pdf")
}

// studentRequest parses the request and checks that the caller may view the
// student's report: staff see everyone, a student sees only themself.
func (rc *ReportsController) studentRequest(c *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	id, from, to, ok := reportRequest(c)
	if !ok {
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	if auth.GetUserRole(c) == entities.UserRoleStudent && auth.GetUserID(c) != id {
		c.IndentedJSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	return id, from, to, true
}

func reportRequest(c *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	id, ok := parseID(c)
	if !ok {
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	from, to, ok := parseDateRange(c)
	if !ok {
		return uuid.Nil, time.Time{}, time.Time{}, false
	}
	return id, from, to, true
}

// parseDateRange reads the from/to query parameters. When absent, the range
// defaults to the last 30 days.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "from must be formatted as YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "to must be formatted as YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		// Cover the whole final day of the range.
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func sendAttachment(c *gin.Context, data []byte, contentType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func respondReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reports.ErrStudentNotFound), errors.Is(err, reports.ErrTeacherNotFound):
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
