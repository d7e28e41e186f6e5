package model

import "time"

// Period is a calendar month of a given year.
type Period struct {
	Year  int
	Month time.Month
}

// Range returns the half-open date interval covering the period.
func (p Period) Range() (Date, Date) {
	return MonthRange(p.Year, p.Month)
}

// StudentAttendanceCount is one active student with the number of entries
// recorded in the reporting window.
type StudentAttendanceCount struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	RegistrationNumber *string       `json:"registration_number"`
	ClassCategory      ClassCategory `json:"class_category"`
	MonthlyLessons     int           `json:"monthly_lessons"`
	TotalClasses       int           `json:"total_classes"`
}

// CategoryStats summarizes one class category over the reporting window.
type CategoryStats struct {
	ClassCategory        ClassCategory `json:"class_category"`
	TotalStudents        int           `json:"total_students"`
	TotalAttendances     int           `json:"total_attendances"`
	AvgClassesPerStudent float64       `json:"avg_classes_per_student"`
}

// OverAttendance is a student who attended more classes than allocated.
type OverAttendance struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	RegistrationNumber *string       `json:"registration_number"`
	ClassCategory      ClassCategory `json:"class_category"`
	MonthlyLessons     int           `json:"monthly_lessons"`
	TotalAttended      int           `json:"total_attended"`
	OverBy             int           `json:"over_by"`
}

// AgeTransition is a student crossing into a new testing age range during
// the target month.
type AgeTransition struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	RegistrationNumber *string       `json:"registration_number"`
	ClassCategory      ClassCategory `json:"class_category"`
	DateOfBirth        Date          `json:"date_of_birth"`
	BirthdayDate       Date          `json:"birthday_date"`
	TurningAge         int           `json:"turning_age"`
	CurrentAgeRange    string        `json:"current_age_range"`
	NewAgeRange        string        `json:"new_age_range"`
}
