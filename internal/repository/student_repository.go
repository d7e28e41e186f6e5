package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lionsacademy/register-backend/internal/model"
)

const studentColumns = `id, name, registration_number, class_category, monthly_lessons, date_of_birth, active, created_at, updated_at`

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.RegistrationNumber, &s.ClassCategory, &s.MonthlyLessons,
		&s.DateOfBirth, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// GetByID retrieves a student by ID regardless of active state.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// GetActiveByID retrieves a student only if it is active.
func (r *StudentRepository) GetActiveByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1 AND active = true`, id))
}

// List retrieves students ordered by category then name.
func (r *StudentRepository) List(ctx context.Context, filter model.StudentFilter) ([]model.Student, error) {
	var c conditions
	if filter.Category != nil {
		c.add("class_category = ?", string(*filter.Category))
	}
	if filter.Active != nil {
		c.add("active = ?", *filter.Active)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students`+c.where()+` ORDER BY class_category, name`, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// ListActiveWithBirthDate retrieves active students that have a date of birth,
// ordered by date of birth.
func (r *StudentRepository) ListActiveWithBirthDate(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM students
		 WHERE active = true AND date_of_birth IS NOT NULL
		 ORDER BY date_of_birth`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// Search matches active students by name or registration number,
// case-insensitively, ordered by name.
func (r *StudentRepository) Search(ctx context.Context, query string, limit int) ([]model.StudentSearchResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, class_category
		 FROM students
		 WHERE active = true AND (name ILIKE $1 OR registration_number ILIKE $1)
		 ORDER BY name
		 LIMIT $2`,
		"%"+escapeLike(query)+"%", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.StudentSearchResult{}
	for rows.Next() {
		var s model.StudentSearchResult
		if err := rows.Scan(&s.ID, &s.Name, &s.ClassCategory); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// Create inserts a new student and fills server-assigned fields.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (name, class_category, registration_number, monthly_lessons, date_of_birth, active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.Name, string(s.ClassCategory), s.RegistrationNumber, s.MonthlyLessons, s.DateOfBirth, s.Active,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return studentWriteError(err)
}

// Update modifies a student. A nil active keeps the stored value.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student, active *bool) (*model.Student, error) {
	updated, err := scanStudent(r.pool.QueryRow(ctx,
		`UPDATE students
		 SET name = $1, class_category = $2, registration_number = $3, monthly_lessons = $4,
		     date_of_birth = $5, active = COALESCE($6, active), updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7
		 RETURNING `+studentColumns,
		s.Name, string(s.ClassCategory), s.RegistrationNumber, s.MonthlyLessons, s.DateOfBirth, active, s.ID,
	))
	if err != nil {
		return nil, studentWriteError(err)
	}
	return updated, nil
}

// Deactivate retires a student. Rows are never physically removed so that
// historical attendance keeps joining.
func (r *StudentRepository) Deactivate(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func studentWriteError(err error) error {
	if err == nil {
		return nil
	}
	if name, ok := uniqueViolation(err); ok && name == constraintStudentRegistration {
		return ErrDuplicateRegistration
	}
	return notFound(err)
}
