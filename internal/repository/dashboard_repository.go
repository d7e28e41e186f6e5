package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lionsacademy/register-backend/internal/model"
)

// DashboardRepository handles admin dashboard data access.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// ActiveStudentsByCategory counts active students per class category.
func (r *DashboardRepository) ActiveStudentsByCategory(ctx context.Context) (map[model.ClassCategory]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT class_category, COUNT(*) FROM students WHERE active = true GROUP BY class_category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.ClassCategory]int)
	for rows.Next() {
		var category model.ClassCategory
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

// SignInCounts returns the number of entries on day and within
// [monthStart, monthEnd) in one round trip.
func (r *DashboardRepository) SignInCounts(ctx context.Context, day, monthStart, monthEnd model.Date) (today, month int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE attendance_date = $1),
			COUNT(*) FILTER (WHERE attendance_date >= $2 AND attendance_date < $3)
		 FROM attendance
		 WHERE attendance_date >= LEAST($1::date, $2::date)`,
		day, monthStart, monthEnd,
	).Scan(&today, &month)
	return
}
