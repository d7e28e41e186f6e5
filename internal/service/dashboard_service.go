package service

import (
	"context"
	"fmt"

	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/rs/zerolog"
)

// DashboardStore supplies the counters shown on the admin landing page.
type DashboardStore interface {
	ActiveStudentsByCategory(ctx context.Context) (map[model.ClassCategory]int, error)
	SignInCounts(ctx context.Context, day, monthStart, monthEnd model.Date) (today, month int, err error)
}

// DashboardService builds the admin summary.
type DashboardService struct {
	store DashboardStore
	clock Clock
	log   zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store DashboardStore, clock Clock, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		store: store,
		clock: clock,
		log:   log.With().Str("component", "dashboard_service").Logger(),
	}
}

// Summary returns active-student and sign-in counters for today.
func (s *DashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	byCategory, err := s.store.ActiveStudentsByCategory(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count active students")
		return nil, fmt.Errorf("count students: %w", err)
	}

	today := s.clock.Today()
	monthStart, monthEnd := model.MonthRange(today.Year(), today.Month())
	signInsToday, signInsMonth, err := s.store.SignInCounts(ctx, today, monthStart, monthEnd)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count sign-ins")
		return nil, fmt.Errorf("count sign-ins: %w", err)
	}

	summary := &model.DashboardSummary{
		Today:              today,
		StudentsByCategory: make(map[model.ClassCategory]int, len(model.AllCategories)),
		SignInsToday:       signInsToday,
		SignInsThisMonth:   signInsMonth,
	}
	for _, c := range model.AllCategories {
		n := byCategory[c]
		summary.StudentsByCategory[c] = n
		summary.ActiveStudents += n
	}
	return summary, nil
}
