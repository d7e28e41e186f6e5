package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/rs/zerolog"
)

// ReportStore supplies per-student counts for a reporting window.
type ReportStore interface {
	CountsByStudent(ctx context.Context, category *model.ClassCategory, period *model.Period) ([]model.StudentAttendanceCount, error)
}

// ReportService aggregates attendance into the monthly admin reports.
type ReportService struct {
	reports  ReportStore
	students StudentStore
	log      zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(reports ReportStore, students StudentStore, log zerolog.Logger) *ReportService {
	return &ReportService{
		reports:  reports,
		students: students,
		log:      log.With().Str("component", "report_service").Logger(),
	}
}

// ByStudent lists every active student with their class count in the
// period, zero included, sorted by category then name. A nil period covers
// all recorded attendance.
func (s *ReportService) ByStudent(ctx context.Context, category *model.ClassCategory, period *model.Period) ([]model.StudentAttendanceCount, error) {
	counts, err := s.reports.CountsByStudent(ctx, category, period)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count attendance by student")
		return nil, fmt.Errorf("count by student: %w", err)
	}
	return counts, nil
}

// CategoryStats summarizes each category that has active students.
func (s *ReportService) CategoryStats(ctx context.Context, period *model.Period) ([]model.CategoryStats, error) {
	counts, err := s.ByStudent(ctx, nil, period)
	if err != nil {
		return nil, err
	}
	return SummarizeCategories(counts), nil
}

// OverAttendance lists students who attended strictly more classes than
// their monthly allocation. The period is mandatory.
func (s *ReportService) OverAttendance(ctx context.Context, period *model.Period) ([]model.OverAttendance, error) {
	if period == nil {
		return nil, ErrInvalidPeriod
	}
	counts, err := s.ByStudent(ctx, nil, period)
	if err != nil {
		return nil, err
	}
	return FindOverAttendance(counts), nil
}

// AgeTransitions lists students entering a new testing age range in the
// period's month. The period is mandatory.
func (s *ReportService) AgeTransitions(ctx context.Context, period *model.Period) ([]model.AgeTransition, error) {
	if period == nil {
		return nil, ErrInvalidPeriod
	}
	students, err := s.students.ListActiveWithBirthDate(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list students with birth dates")
		return nil, fmt.Errorf("list students: %w", err)
	}
	return DetectAgeTransitions(students, *period), nil
}

// SummarizeCategories folds per-student counts into per-category totals,
// ordered by category name.
func SummarizeCategories(counts []model.StudentAttendanceCount) []model.CategoryStats {
	byCategory := make(map[model.ClassCategory]*model.CategoryStats)
	for _, c := range counts {
		st, ok := byCategory[c.ClassCategory]
		if !ok {
			st = &model.CategoryStats{ClassCategory: c.ClassCategory}
			byCategory[c.ClassCategory] = st
		}
		st.TotalStudents++
		st.TotalAttendances += c.TotalClasses
	}

	stats := make([]model.CategoryStats, 0, len(byCategory))
	for _, st := range byCategory {
		if st.TotalStudents > 0 {
			st.AvgClassesPerStudent = round2(float64(st.TotalAttendances) / float64(st.TotalStudents))
		}
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ClassCategory < stats[j].ClassCategory })
	return stats
}

// FindOverAttendance keeps the students whose count exceeds their
// allocation, ordered by category, largest excess first, then name.
func FindOverAttendance(counts []model.StudentAttendanceCount) []model.OverAttendance {
	over := []model.OverAttendance{}
	for _, c := range counts {
		if c.TotalClasses <= c.MonthlyLessons {
			continue
		}
		over = append(over, model.OverAttendance{
			ID:                 c.ID,
			Name:               c.Name,
			RegistrationNumber: c.RegistrationNumber,
			ClassCategory:      c.ClassCategory,
			MonthlyLessons:     c.MonthlyLessons,
			TotalAttended:      c.TotalClasses,
			OverBy:             c.TotalClasses - c.MonthlyLessons,
		})
	}

	sort.SliceStable(over, func(i, j int) bool {
		a, b := over[i], over[j]
		if a.ClassCategory != b.ClassCategory {
			return a.ClassCategory < b.ClassCategory
		}
		if a.OverBy != b.OverBy {
			return a.OverBy > b.OverBy
		}
		return a.Name < b.Name
	})
	return over
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
