package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lionsacademy/register-backend/internal/response"
	"github.com/lionsacademy/register-backend/internal/service"
)

// ReportHandler serves the monthly attendance reports.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ByStudent godoc
// GET /api/v1/attendance/report/by-student?month=&year=&category=
func (h *ReportHandler) ByStudent(c *gin.Context) {
	period, err := queryPeriod(c)
	if err != nil {
		failErr(c, err)
		return
	}
	category, err := queryCategory(c)
	if err != nil {
		failErr(c, err)
		return
	}

	counts, err := h.reportService.ByStudent(c.Request.Context(), category, period)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, counts)
}

// Stats godoc
// GET /api/v1/attendance/stats?month=&year=
func (h *ReportHandler) Stats(c *gin.Context) {
	period, err := queryPeriod(c)
	if err != nil {
		failErr(c, err)
		return
	}

	stats, err := h.reportService.CategoryStats(c.Request.Context(), period)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// OverAttendance godoc
// GET /api/v1/attendance/report/over-attendance?month=&year=
// Month and year are required.
func (h *ReportHandler) OverAttendance(c *gin.Context) {
	period, err := queryPeriod(c)
	if err != nil {
		failErr(c, err)
		return
	}

	rows, err := h.reportService.OverAttendance(c.Request.Context(), period)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// AgeTransitions godoc
// GET /api/v1/attendance/report/age-transitions?month=&year=
// Month and year are required.
func (h *ReportHandler) AgeTransitions(c *gin.Context) {
	period, err := queryPeriod(c)
	if err != nil {
		failErr(c, err)
		return
	}

	rows, err := h.reportService.AgeTransitions(c.Request.Context(), period)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}
