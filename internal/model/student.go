package model

import "time"

// ClassCategory is the cohort a student trains with.
type ClassCategory string

const (
	CategoryLittleLions ClassCategory = "Little Lions"
	CategoryJuniors     ClassCategory = "Juniors"
	CategoryYouths      ClassCategory = "Youths"
	CategoryAdults      ClassCategory = "Adults"
)

// AllCategories lists every class category.
var AllCategories = []ClassCategory{
	CategoryLittleLions,
	CategoryJuniors,
	CategoryYouths,
	CategoryAdults,
}

// Valid reports whether c is one of the four known categories.
func (c ClassCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultMonthlyLessons is the allocation given to a student when none is set.
const DefaultMonthlyLessons = 8

// Student represents an academy member who signs in at the kiosk.
type Student struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	RegistrationNumber *string       `json:"registration_number"`
	ClassCategory      ClassCategory `json:"class_category"`
	MonthlyLessons     int           `json:"monthly_lessons"`
	DateOfBirth        *Date         `json:"date_of_birth"`
	Active             bool          `json:"active"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// StudentView is a Student enriched with the age fields derived at read time.
type StudentView struct {
	Student
	Age             *int    `json:"age"`
	TestingAgeRange *string `json:"testing_age_range"`
}

// StudentSearchResult is the trimmed-down record shown on the public kiosk.
type StudentSearchResult struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	ClassCategory ClassCategory `json:"class_category"`
}

// StudentFilter narrows the admin student listing.
type StudentFilter struct {
	Category *ClassCategory
	Active   *bool
}

// CreateStudentRequest is the payload for registering a new student.
type CreateStudentRequest struct {
	Name               string        `json:"name" binding:"required,notblank,max=255"`
	ClassCategory      ClassCategory `json:"class_category" binding:"required,class_category"`
	RegistrationNumber string        `json:"registration_number" binding:"omitempty,max=100"`
	MonthlyLessons     int           `json:"monthly_lessons" binding:"omitempty,min=1,max=31"`
	DateOfBirth        string        `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStudentRequest is the payload for editing a student. Omitting active
// keeps the current value.
type UpdateStudentRequest struct {
	Name               string        `json:"name" binding:"required,notblank,max=255"`
	ClassCategory      ClassCategory `json:"class_category" binding:"required,class_category"`
	RegistrationNumber string        `json:"registration_number" binding:"omitempty,max=100"`
	MonthlyLessons     int           `json:"monthly_lessons" binding:"omitempty,min=1,max=31"`
	DateOfBirth        string        `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Active             *bool         `json:"active"`
}
