package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by repositories. Everything else is an
// unexpected store failure.
var (
	ErrNotFound              = errors.New("record not found")
	ErrDuplicateAttendance   = errors.New("attendance already recorded for this student and day")
	ErrDuplicateRegistration = errors.New("registration number already exists")
	ErrDuplicateUsername     = errors.New("username already exists")
)

// Constraint names declared in migrations/.
const (
	constraintAttendanceStudentDay = "uq_attendance_student_day"
	constraintStudentRegistration  = "uq_students_registration_number"
	constraintAdminUsername        = "uq_admins_username"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// uniqueViolation returns the violated constraint name, or "" if err is not
// a unique violation.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateForeignKeyViolation
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
