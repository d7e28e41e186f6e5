package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lionsacademy/register-backend/internal/model"
)

func newTestStudentService(students ...model.Student) (*StudentService, *fakeStudentStore) {
	store := newFakeStudentStore(students...)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return NewStudentService(store, fixedClock(now), testLog), store
}

func TestSearchQueryLength(t *testing.T) {
	svc, _ := newTestStudentService(model.Student{ID: 1, Name: "Emma Williams", Active: true})

	tests := []struct {
		query   string
		wantErr error
	}{
		{"", ErrQueryTooShort},
		{"e", ErrQueryTooShort},
		{"  e  ", ErrQueryTooShort},
		{"em", nil},
	}
	for _, tt := range tests {
		_, err := svc.Search(context.Background(), tt.query)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Search(%q): expected %v, got %v", tt.query, tt.wantErr, err)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	var students []model.Student
	for i := 1; i <= 30; i++ {
		students = append(students, model.Student{ID: i, Name: fmt.Sprintf("Student %02d", i), Active: true})
	}
	svc, _ := newTestStudentService(students...)

	got, err := svc.Search(context.Background(), "st")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != SearchLimit {
		t.Fatalf("expected %d results, got %d", SearchLimit, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Fatalf("results not ordered by name: %q before %q", got[i-1].Name, got[i].Name)
		}
	}
}

func TestCreateStudentDefaults(t *testing.T) {
	svc, _ := newTestStudentService()

	v, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name:          "  David Brown ",
		ClassCategory: model.CategoryAdults,
		DateOfBirth:   "1990-03-16",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Name != "David Brown" {
		t.Errorf("expected trimmed name, got %q", v.Name)
	}
	if !v.Active {
		t.Error("expected new students to be active")
	}
	if v.MonthlyLessons != model.DefaultMonthlyLessons {
		t.Errorf("expected %d monthly lessons, got %d", model.DefaultMonthlyLessons, v.MonthlyLessons)
	}
	if v.RegistrationNumber != nil {
		t.Errorf("expected no registration number, got %q", *v.RegistrationNumber)
	}
	if v.Age == nil || *v.Age != 33 {
		t.Errorf("expected age 33 the day before the birthday, got %v", v.Age)
	}
}

func TestCreateStudentDuplicateRegistration(t *testing.T) {
	svc, _ := newTestStudentService(model.Student{
		ID: 1, Name: "Old", RegistrationNumber: ptr("LA-001"), Active: false,
	})

	_, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name:               "New",
		ClassCategory:      model.CategoryJuniors,
		RegistrationNumber: "LA-001",
	})
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestCreateStudentInvalidDate(t *testing.T) {
	svc, _ := newTestStudentService()

	_, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name:          "X",
		ClassCategory: model.CategoryJuniors,
		DateOfBirth:   "2020-02-30",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestBlankNameRejected(t *testing.T) {
	svc, store := newTestStudentService()

	_, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name:          "   ",
		ClassCategory: model.CategoryAdults,
	})
	if !errors.Is(err, ErrBlankName) {
		t.Fatalf("Create: expected ErrBlankName, got %v", err)
	}

	_, err = svc.Update(context.Background(), 1, model.UpdateStudentRequest{
		Name:          "\t \n",
		ClassCategory: model.CategoryAdults,
	})
	if !errors.Is(err, ErrBlankName) {
		t.Fatalf("Update: expected ErrBlankName, got %v", err)
	}

	for _, s := range store.students {
		if s.Name == "" {
			t.Errorf("blank name reached the store: %+v", s)
		}
	}
}

func TestCreateStudentTrimsName(t *testing.T) {
	svc, _ := newTestStudentService()

	v, err := svc.Create(context.Background(), model.CreateStudentRequest{
		Name:          "  Emma Williams ",
		ClassCategory: model.CategoryLittleLions,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.Name != "Emma Williams" {
		t.Errorf("expected trimmed name, got %q", v.Name)
	}
}

func TestUpdateStudentActiveFlag(t *testing.T) {
	svc, store := newTestStudentService(model.Student{ID: 1, Name: "A", ClassCategory: model.CategoryYouths, MonthlyLessons: 8, Active: false})

	v, err := svc.Update(context.Background(), 1, model.UpdateStudentRequest{Name: "A", ClassCategory: model.CategoryYouths})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if v.Active {
		t.Error("omitted active must keep the stored value")
	}

	v, err = svc.Update(context.Background(), 1, model.UpdateStudentRequest{Name: "A", ClassCategory: model.CategoryAdults, Active: ptr(true)})
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if !v.Active || store.students[1].ClassCategory != model.CategoryAdults {
		t.Errorf("unexpected stored student: %+v", store.students[1])
	}

	if _, err := svc.Update(context.Background(), 42, model.UpdateStudentRequest{Name: "B", ClassCategory: model.CategoryAdults}); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDeactivateStudent(t *testing.T) {
	svc, store := newTestStudentService(model.Student{ID: 1, Name: "A", Active: true})

	if err := svc.Deactivate(context.Background(), 1); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if store.students[1].Active {
		t.Error("expected student to be inactive")
	}
	if _, ok := store.students[1]; !ok {
		t.Error("expected student row to be kept")
	}
	if err := svc.Deactivate(context.Background(), 2); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestListStudentsFilter(t *testing.T) {
	svc, _ := newTestStudentService(
		model.Student{ID: 1, Name: "A", ClassCategory: model.CategoryJuniors, Active: true},
		model.Student{ID: 2, Name: "B", ClassCategory: model.CategoryJuniors, Active: false},
		model.Student{ID: 3, Name: "C", ClassCategory: model.CategoryAdults, Active: true},
	)
	category := model.CategoryJuniors

	got, err := svc.List(context.Background(), model.StudentFilter{Category: &category, Active: ptr(true)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected students: %+v", got)
	}
}
