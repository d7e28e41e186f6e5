package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lionsacademy/register-backend/internal/metrics"
	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/response"
	"github.com/lionsacademy/register-backend/internal/service"
	"github.com/lionsacademy/register-backend/internal/validator"
)

// AttendanceHandler serves kiosk sign-in and the admin attendance log.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	metrics           *metrics.Metrics
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService, m *metrics.Metrics) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, metrics: m}
}

// SignIn godoc
// POST /api/v1/attendance
// Public. Records today's attendance for {student_id}.
func (h *AttendanceHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.attendanceService.SignIn(c.Request.Context(), req.StudentID)
	if err != nil {
		var already *service.AlreadySignedInError
		switch {
		case errors.As(err, &already):
			h.metrics.SignIn(metrics.OutcomeAlreadySigned)
			response.FailWithStudent(c, http.StatusConflict, response.ErrAlreadySignedIn, already.Student)
		case errors.Is(err, service.ErrStudentNotFound):
			h.metrics.SignIn(metrics.OutcomeUnknownStudent)
			failErr(c, err)
		default:
			h.metrics.SignIn(metrics.OutcomeError)
			failErr(c, err)
		}
		return
	}

	h.metrics.SignIn(metrics.OutcomeRecorded)
	response.Success(c, http.StatusCreated, result)
}

// List godoc
// GET /api/v1/attendance?student_id=&start_date=&end_date=&month=&year=
func (h *AttendanceHandler) List(c *gin.Context) {
	var filter model.AttendanceFilter
	var err error
	if filter.StudentID, err = queryInt(c, "student_id"); err != nil {
		failErr(c, err)
		return
	}
	if filter.StartDate, err = queryDate(c, "start_date"); err != nil {
		failErr(c, err)
		return
	}
	if filter.EndDate, err = queryDate(c, "end_date"); err != nil {
		failErr(c, err)
		return
	}
	if filter.Period, err = queryPeriod(c); err != nil {
		failErr(c, err)
		return
	}

	records, err := h.attendanceService.List(c.Request.Context(), filter)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// Delete godoc
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.attendanceService.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Attendance record deleted successfully")
}
