package service

import (
	"testing"
	"time"

	"github.com/lionsacademy/register-backend/internal/model"
)

func TestAgeRangeBoundaries(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{0, AgeRangeEightAndBelow},
		{8, AgeRangeEightAndBelow},
		{9, AgeRangeNineToTwelve},
		{12, AgeRangeNineToTwelve},
		{13, AgeRangeTeen},
		{17, AgeRangeTeen},
		{18, AgeRangeAdult},
		{99, AgeRangeAdult},
	}
	for _, tt := range tests {
		if got := AgeRange(tt.age); got != tt.want {
			t.Errorf("AgeRange(%d) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestAgeOn(t *testing.T) {
	dob := *mustDate("2010-06-15")
	tests := []struct {
		asOf string
		want int
	}{
		{"2020-06-14", 9},
		{"2020-06-15", 10},
		{"2020-12-31", 10},
		{"2021-01-01", 10},
		{"2010-06-15", 0},
	}
	for _, tt := range tests {
		if got := AgeOn(dob, *mustDate(tt.asOf)); got != tt.want {
			t.Errorf("AgeOn(%s, %s) = %d, want %d", dob, tt.asOf, got, tt.want)
		}
	}
}

func TestWithAge(t *testing.T) {
	today := *mustDate("2024-03-10")

	v := WithAge(model.Student{ID: 1, DateOfBirth: mustDate("2011-03-11")}, today)
	if v.Age == nil || *v.Age != 12 {
		t.Fatalf("expected age 12, got %v", v.Age)
	}
	if *v.TestingAgeRange != AgeRangeNineToTwelve {
		t.Errorf("expected %q, got %q", AgeRangeNineToTwelve, *v.TestingAgeRange)
	}

	v = WithAge(model.Student{ID: 2}, today)
	if v.Age != nil || v.TestingAgeRange != nil {
		t.Errorf("expected no age fields without a birth date, got %v %v", v.Age, v.TestingAgeRange)
	}
}

func TestDetectAgeTransitions(t *testing.T) {
	students := []model.Student{
		{ID: 1, Name: "Turning Nine", DateOfBirth: mustDate("2015-05-20")},
		{ID: 2, Name: "Turning Ten", DateOfBirth: mustDate("2014-05-03")},
		{ID: 3, Name: "Turning Thirteen", DateOfBirth: mustDate("2011-05-01")},
		{ID: 4, Name: "Turning Fourteen", DateOfBirth: mustDate("2010-05-09")},
		{ID: 5, Name: "Turning Eighteen", DateOfBirth: mustDate("2006-05-20")},
		{ID: 6, Name: "Different Month", DateOfBirth: mustDate("2015-06-01")},
		{ID: 7, Name: "No Birth Date"},
	}

	got := DetectAgeTransitions(students, model.Period{Year: 2024, Month: time.May})

	want := []struct {
		id      int
		turning int
		current string
		next    string
		day     string
	}{
		{3, 13, AgeRangeNineToTwelve, AgeRangeTeen, "2024-05-01"},
		{5, 18, AgeRangeTeen, AgeRangeAdult, "2024-05-20"},
		{1, 9, AgeRangeEightAndBelow, AgeRangeNineToTwelve, "2024-05-20"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d transitions, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		g := got[i]
		if g.ID != w.id || g.TurningAge != w.turning || g.CurrentAgeRange != w.current || g.NewAgeRange != w.next {
			t.Errorf("transition %d = %+v, want %+v", i, g, w)
		}
		if g.BirthdayDate.String() != w.day {
			t.Errorf("transition %d birthday = %s, want %s", i, g.BirthdayDate, w.day)
		}
	}
}

func TestDetectAgeTransitionsLeapDay(t *testing.T) {
	students := []model.Student{
		{ID: 1, Name: "Leap", DateOfBirth: mustDate("2012-02-29")},
	}

	got := DetectAgeTransitions(students, model.Period{Year: 2021, Month: time.February})
	if len(got) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(got))
	}
	if got[0].TurningAge != 9 {
		t.Errorf("expected turning age 9, got %d", got[0].TurningAge)
	}
	if got[0].BirthdayDate.String() != "2021-02-28" {
		t.Errorf("expected birthday clamped to 2021-02-28, got %s", got[0].BirthdayDate)
	}
}

func TestDetectAgeTransitionsEmpty(t *testing.T) {
	got := DetectAgeTransitions(nil, model.Period{Year: 2024, Month: time.January})
	if got == nil {
		t.Fatal("expected an empty, non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no transitions, got %d", len(got))
	}
}
