package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/rs/zerolog"
)

// AttendanceStore is the attendance persistence used by the services.
type AttendanceStore interface {
	Create(ctx context.Context, studentID int, day model.Date) (*model.AttendanceEntry, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter model.AttendanceFilter) ([]model.AttendanceRecord, error)
}

// AlreadySignedInError carries the matched student back to the kiosk so
// it can confirm who was recognized.
type AlreadySignedInError struct {
	Student model.Student
	Date    model.Date
}

func (e *AlreadySignedInError) Error() string { return ErrAlreadySignedIn.Error() }

func (e *AlreadySignedInError) Unwrap() error { return ErrAlreadySignedIn }

// AttendanceService records sign-ins and serves the raw attendance log.
type AttendanceService struct {
	students   StudentStore
	attendance AttendanceStore
	clock      Clock
	log        zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(students StudentStore, attendance AttendanceStore, clock Clock, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		students:   students,
		attendance: attendance,
		clock:      clock,
		log:        log.With().Str("component", "attendance_service").Logger(),
	}
}

// SignIn records today's attendance for an active student. At most one
// entry per student per day is enforced by the store's unique constraint,
// so concurrent attempts resolve to one success and one
// *AlreadySignedInError.
func (s *AttendanceService) SignIn(ctx context.Context, studentID int) (*model.SignInResult, error) {
	student, err := s.students.GetActiveByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		s.log.Error().Err(err).Int("student_id", studentID).Msg("failed to look up student")
		return nil, fmt.Errorf("get student: %w", err)
	}

	today := s.clock.Today()
	entry, err := s.attendance.Create(ctx, studentID, today)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAttendance):
			return nil, &AlreadySignedInError{Student: *student, Date: today}
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrStudentNotFound
		}
		s.log.Error().Err(err).Int("student_id", studentID).Msg("failed to record attendance")
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	s.log.Info().
		Int("student_id", studentID).
		Str("date", today.String()).
		Msg("Student signed in")

	return &model.SignInResult{
		Message:    "Welcome, " + student.Name + "! Attendance recorded.",
		Attendance: *entry,
		Student:    *student,
	}, nil
}

// List returns joined attendance rows, newest first.
func (s *AttendanceService) List(ctx context.Context, filter model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	records, err := s.attendance.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list attendance")
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// Delete removes a single attendance entry as an admin correction.
func (s *AttendanceService) Delete(ctx context.Context, id int) error {
	if err := s.attendance.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAttendanceNotFound
		}
		s.log.Error().Err(err).Int("attendance_id", id).Msg("failed to delete attendance")
		return fmt.Errorf("delete attendance: %w", err)
	}
	s.log.Info().Int("attendance_id", id).Msg("Attendance deleted")
	return nil
}
