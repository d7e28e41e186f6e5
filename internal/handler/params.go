package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/response"
	"github.com/lionsacademy/register-backend/internal/service"
)

var errBadParam = errors.New("bad query parameter")

// pathID parses the :id path parameter, replying 400 when it is not a
// positive integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// queryPeriod reads month and year. Both absent yields nil; a lone value
// or an out-of-range one is service.ErrInvalidPeriod.
func queryPeriod(c *gin.Context) (*model.Period, error) {
	monthStr, yearStr := c.Query("month"), c.Query("year")
	if monthStr == "" && yearStr == "" {
		return nil, nil
	}
	if monthStr == "" || yearStr == "" {
		return nil, service.ErrInvalidPeriod
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return nil, service.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > 9999 {
		return nil, service.ErrInvalidPeriod
	}
	return &model.Period{Year: year, Month: time.Month(month)}, nil
}

// queryCategory reads an optional class category filter.
func queryCategory(c *gin.Context) (*model.ClassCategory, error) {
	raw := c.Query("category")
	if raw == "" {
		return nil, nil
	}
	category := model.ClassCategory(raw)
	if !category.Valid() {
		return nil, errBadParam
	}
	return &category, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errBadParam
	}
	return &b, nil
}

func queryInt(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errBadParam
	}
	return &n, nil
}

func queryDate(c *gin.Context, key string) (*model.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, errBadParam
	}
	return &d, nil
}

// failErr maps a service error onto the HTTP error taxonomy. Anything
// unrecognized is a 500 with no detail leaked.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQueryTooShort):
		response.Fail(c, http.StatusBadRequest, response.ErrQueryTooShort)
	case errors.Is(err, service.ErrInvalidPeriod):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPeriod)
	case errors.Is(err, service.ErrInvalidDate):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"date_of_birth": "date_of_birth must be a valid YYYY-MM-DD date"})
	case errors.Is(err, service.ErrBlankName):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"name": "name must not be blank"})
	case errors.Is(err, errBadParam):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidFilter)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrStudentNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrAttendanceNotFound)
	case errors.Is(err, service.ErrAdminNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrDuplicateRegistration):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateRegistration)
	case errors.Is(err, service.ErrDuplicateUsername):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateUsername)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
