package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/rs/zerolog"
)

const (
	// MinSearchLength is the shortest kiosk query accepted.
	MinSearchLength = 2
	// SearchLimit caps kiosk search results.
	SearchLimit = 20
)

// StudentStore is the student persistence used by the services.
type StudentStore interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	GetActiveByID(ctx context.Context, id int) (*model.Student, error)
	List(ctx context.Context, filter model.StudentFilter) ([]model.Student, error)
	ListActiveWithBirthDate(ctx context.Context) ([]model.Student, error)
	Search(ctx context.Context, query string, limit int) ([]model.StudentSearchResult, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student, active *bool) (*model.Student, error)
	Deactivate(ctx context.Context, id int) error
}

// StudentService handles student business logic.
type StudentService struct {
	students StudentStore
	clock    Clock
	log      zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, clock Clock, log zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		clock:    clock,
		log:      log.With().Str("component", "student_service").Logger(),
	}
}

// Search finds active students for the kiosk by name or registration number.
func (s *StudentService) Search(ctx context.Context, query string) ([]model.StudentSearchResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return nil, ErrQueryTooShort
	}

	results, err := s.students.Search(ctx, query, SearchLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to search students")
		return nil, fmt.Errorf("search students: %w", err)
	}
	return results, nil
}

// List returns students matching the filter with their current age.
func (s *StudentService) List(ctx context.Context, filter model.StudentFilter) ([]model.StudentView, error) {
	students, err := s.students.List(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list students")
		return nil, fmt.Errorf("list students: %w", err)
	}

	today := s.clock.Today()
	views := make([]model.StudentView, 0, len(students))
	for _, st := range students {
		views = append(views, WithAge(st, today))
	}
	return views, nil
}

// Get returns a single student, active or not.
func (s *StudentService) Get(ctx context.Context, id int) (*model.StudentView, error) {
	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapErr(err, "get student")
	}
	v := WithAge(*st, s.clock.Today())
	return &v, nil
}

// Create registers a new, active student.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.StudentView, error) {
	st, err := buildStudent(req.Name, req.ClassCategory, req.RegistrationNumber, req.MonthlyLessons, req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	st.Active = true

	if err := s.students.Create(ctx, st); err != nil {
		return nil, s.mapErr(err, "create student")
	}

	s.log.Info().Int("student_id", st.ID).Str("category", string(st.ClassCategory)).Msg("Student created")
	v := WithAge(*st, s.clock.Today())
	return &v, nil
}

// Update replaces a student's editable fields. A nil Active keeps the
// current flag, so a retired student can be reactivated explicitly.
func (s *StudentService) Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.StudentView, error) {
	st, err := buildStudent(req.Name, req.ClassCategory, req.RegistrationNumber, req.MonthlyLessons, req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	st.ID = id

	updated, err := s.students.Update(ctx, st, req.Active)
	if err != nil {
		return nil, s.mapErr(err, "update student")
	}

	s.log.Info().Int("student_id", id).Msg("Student updated")
	v := WithAge(*updated, s.clock.Today())
	return &v, nil
}

// Deactivate logically deletes a student.
func (s *StudentService) Deactivate(ctx context.Context, id int) error {
	if err := s.students.Deactivate(ctx, id); err != nil {
		return s.mapErr(err, "deactivate student")
	}
	s.log.Info().Int("student_id", id).Msg("Student deactivated")
	return nil
}

func (s *StudentService) mapErr(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrStudentNotFound
	case errors.Is(err, repository.ErrDuplicateRegistration):
		return ErrDuplicateRegistration
	default:
		s.log.Error().Err(err).Msg("failed to " + op)
		return fmt.Errorf("%s: %w", op, err)
	}
}

// buildStudent normalizes request fields into a Student. Blank registration
// numbers are stored as NULL so they never collide.
func buildStudent(name string, category model.ClassCategory, regNo string, lessons int, dob string) (*model.Student, error) {
	if name = strings.TrimSpace(name); name == "" {
		return nil, ErrBlankName
	}
	st := &model.Student{
		Name:           name,
		ClassCategory:  category,
		MonthlyLessons: lessons,
	}
	if st.MonthlyLessons == 0 {
		st.MonthlyLessons = model.DefaultMonthlyLessons
	}
	if regNo = strings.TrimSpace(regNo); regNo != "" {
		st.RegistrationNumber = &regNo
	}
	if dob != "" {
		d, err := model.ParseDate(dob)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		st.DateOfBirth = &d
	}
	return st, nil
}
