package service

import "errors"

// Domain errors returned by the services. Handlers map them onto HTTP codes.
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrStudentNotFound       = errors.New("student not found")
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrAdminNotFound         = errors.New("admin not found")
	ErrAlreadySignedIn       = errors.New("student already signed in today")
	ErrDuplicateRegistration = errors.New("registration number already in use")
	ErrDuplicateUsername     = errors.New("username already in use")
	ErrQueryTooShort         = errors.New("search query must be at least 2 characters")
	ErrInvalidPeriod         = errors.New("month and year are required")
	ErrInvalidDate           = errors.New("invalid date")
	ErrBlankName             = errors.New("name must not be blank")
)
