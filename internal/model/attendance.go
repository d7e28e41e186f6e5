package model

import "time"

// AttendanceEntry is one sign-in: a student on a calendar day.
type AttendanceEntry struct {
	ID             int       `json:"id"`
	StudentID      int       `json:"student_id"`
	AttendanceDate Date      `json:"attendance_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// AttendanceRecord is an entry joined with its student's name and category.
type AttendanceRecord struct {
	AttendanceEntry
	Name          string        `json:"name"`
	ClassCategory ClassCategory `json:"class_category"`
}

// AttendanceFilter narrows the raw attendance listing. All fields optional.
type AttendanceFilter struct {
	StudentID *int
	StartDate *Date
	EndDate   *Date
	Period    *Period
}

// SignInRequest is the kiosk payload.
type SignInRequest struct {
	StudentID int `json:"student_id" binding:"required,min=1"`
}

// SignInResult is returned after a successful sign-in.
type SignInResult struct {
	Message    string          `json:"message"`
	Attendance AttendanceEntry `json:"attendance"`
	Student    Student         `json:"student"`
}
