package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lionsacademy/register-backend/internal/model"
)

// ReportRepository runs the aggregate queries behind monthly reports.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// CountsByStudent returns every active student (optionally of one category)
// with the number of entries in period. Students without entries are
// included with a zero count. A nil period counts all entries.
func (r *ReportRepository) CountsByStudent(ctx context.Context, category *model.ClassCategory, period *model.Period) ([]model.StudentAttendanceCount, error) {
	var join conditions
	if period != nil {
		from, to := period.Range()
		join.add("a.attendance_date >= ? AND a.attendance_date < ?", from, to)
	}

	where := conditions{args: join.args}
	where.add("s.active = true")
	if category != nil {
		where.add("s.class_category = ?", string(*category))
	}

	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.name, s.registration_number, s.class_category, s.monthly_lessons, COUNT(a.id)
		 FROM students s
		 LEFT JOIN attendance a ON a.student_id = s.id`+join.and()+where.where()+`
		 GROUP BY s.id, s.name, s.registration_number, s.class_category, s.monthly_lessons
		 ORDER BY s.class_category, s.name`, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []model.StudentAttendanceCount{}
	for rows.Next() {
		var c model.StudentAttendanceCount
		if err := rows.Scan(&c.ID, &c.Name, &c.RegistrationNumber, &c.ClassCategory, &c.MonthlyLessons, &c.TotalClasses); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
