package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/response"
	"github.com/lionsacademy/register-backend/internal/service"
	"github.com/lionsacademy/register-backend/internal/validator"
)

// StudentHandler serves the kiosk search and the admin student records.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Search godoc
// GET /api/v1/students/search?query=
// Public. Returns up to 20 active students whose name or registration
// number contains the query.
func (h *StudentHandler) Search(c *gin.Context) {
	results, err := h.studentService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, results)
}

// List godoc
// GET /api/v1/students?category=&active=
func (h *StudentHandler) List(c *gin.Context) {
	var filter model.StudentFilter
	var err error
	if filter.Category, err = queryCategory(c); err != nil {
		failErr(c, err)
		return
	}
	if filter.Active, err = queryBool(c, "active"); err != nil {
		failErr(c, err)
		return
	}

	students, err := h.studentService.List(c.Request.Context(), filter)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

// Get godoc
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, student)
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, student)
}

// Update godoc
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, req)
	if err != nil {
		failErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, student)
}

// Delete godoc
// DELETE /api/v1/students/:id
// Deactivates the student; attendance history is kept.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.studentService.Deactivate(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Student deactivated successfully")
}
