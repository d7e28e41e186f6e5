package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lionsacademy/register-backend/internal/model"
)

// AttendanceRepository handles attendance entry data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Create inserts an entry for (studentID, day). The unique constraint on the
// pair makes concurrent sign-ins resolve to one row; the loser receives
// ErrDuplicateAttendance.
func (r *AttendanceRepository) Create(ctx context.Context, studentID int, day model.Date) (*model.AttendanceEntry, error) {
	e := &model.AttendanceEntry{}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance (student_id, attendance_date)
		 VALUES ($1, $2)
		 RETURNING id, student_id, attendance_date, created_at`,
		studentID, day,
	).Scan(&e.ID, &e.StudentID, &e.AttendanceDate, &e.CreatedAt)
	if err != nil {
		if name, ok := uniqueViolation(err); ok && name == constraintAttendanceStudentDay {
			return nil, ErrDuplicateAttendance
		}
		if foreignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Delete removes a single entry.
func (r *AttendanceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves entries joined with the owning student, newest day first.
func (r *AttendanceRepository) List(ctx context.Context, filter model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	var c conditions
	if filter.StudentID != nil {
		c.add("a.student_id = ?", *filter.StudentID)
	}
	if filter.StartDate != nil {
		c.add("a.attendance_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		c.add("a.attendance_date <= ?", *filter.EndDate)
	}
	if filter.Period != nil {
		from, to := filter.Period.Range()
		c.add("a.attendance_date >= ? AND a.attendance_date < ?", from, to)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.attendance_date, a.created_at, s.name, s.class_category
		 FROM attendance a
		 JOIN students s ON a.student_id = s.id`+c.where()+`
		 ORDER BY a.attendance_date DESC, s.name`, c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AttendanceRecord{}
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.AttendanceDate, &rec.CreatedAt, &rec.Name, &rec.ClassCategory); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
