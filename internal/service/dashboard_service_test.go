package service

import (
	"context"
	"testing"
	"time"

	"github.com/lionsacademy/register-backend/internal/model"
)

type fakeDashboardStore struct {
	byCategory               map[model.ClassCategory]int
	today, month             int
	gotDay, gotStart, gotEnd model.Date
}

func (f *fakeDashboardStore) ActiveStudentsByCategory(ctx context.Context) (map[model.ClassCategory]int, error) {
	return f.byCategory, nil
}

func (f *fakeDashboardStore) SignInCounts(ctx context.Context, day, monthStart, monthEnd model.Date) (int, int, error) {
	f.gotDay, f.gotStart, f.gotEnd = day, monthStart, monthEnd
	return f.today, f.month, nil
}

func TestDashboardSummary(t *testing.T) {
	store := &fakeDashboardStore{
		byCategory: map[model.ClassCategory]int{model.CategoryAdults: 2, model.CategoryJuniors: 3},
		today:      4,
		month:      40,
	}
	now := time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC)
	svc := NewDashboardService(store, fixedClock(now), testLog)

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.ActiveStudents != 5 || got.SignInsToday != 4 || got.SignInsThisMonth != 40 {
		t.Errorf("unexpected summary: %+v", got)
	}
	if len(got.StudentsByCategory) != len(model.AllCategories) || got.StudentsByCategory[model.CategoryYouths] != 0 {
		t.Errorf("expected every category listed, got %v", got.StudentsByCategory)
	}
	if store.gotStart.String() != "2024-12-01" || store.gotEnd.String() != "2025-01-01" || store.gotDay.String() != "2024-12-31" {
		t.Errorf("unexpected window: %s %s %s", store.gotDay, store.gotStart, store.gotEnd)
	}
}
