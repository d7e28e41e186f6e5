package service

import (
	"sort"
	"time"

	"github.com/lionsacademy/register-backend/internal/model"
)

// Testing age ranges used for grading eligibility.
const (
	AgeRangeEightAndBelow = "8 and below"
	AgeRangeNineToTwelve  = "9-12 years"
	AgeRangeTeen          = "13-17 years"
	AgeRangeAdult         = "18 and above"
)

// transitionAges are the ages at which a student enters a new range.
var transitionAges = map[int]bool{9: true, 13: true, 18: true}

// AgeRange maps a whole age in years to its testing age range.
func AgeRange(age int) string {
	switch {
	case age <= 8:
		return AgeRangeEightAndBelow
	case age <= 12:
		return AgeRangeNineToTwelve
	case age <= 17:
		return AgeRangeTeen
	default:
		return AgeRangeAdult
	}
}

// AgeOn returns the whole years elapsed between dob and asOf, not counting
// the current year until the birthday has been reached.
func AgeOn(dob, asOf model.Date) int {
	age := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() || (asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		age--
	}
	return age
}

// BirthdayIn returns the date of the birthday falling in the given period.
// Feb 29 birthdays land on Feb 28 in non-leap years.
func BirthdayIn(dob model.Date, p model.Period) model.Date {
	day := dob.Day()
	if last := daysIn(p.Year, p.Month); day > last {
		day = last
	}
	return model.NewDate(p.Year, p.Month, day)
}

// WithAge fills the derived age fields for a student as of the given day.
func WithAge(s model.Student, today model.Date) model.StudentView {
	v := model.StudentView{Student: s}
	if s.DateOfBirth == nil {
		return v
	}
	age := AgeOn(*s.DateOfBirth, today)
	r := AgeRange(age)
	v.Age = &age
	v.TestingAgeRange = &r
	return v
}

// DetectAgeTransitions returns the students whose birthday falls in the
// period and who reach 9, 13 or 18 on it. Students without a birth date are
// skipped. Results are ordered by birthday then name.
func DetectAgeTransitions(students []model.Student, p model.Period) []model.AgeTransition {
	transitions := []model.AgeTransition{}
	for _, s := range students {
		if s.DateOfBirth == nil || s.DateOfBirth.Month() != p.Month {
			continue
		}

		birthday := BirthdayIn(*s.DateOfBirth, p)
		turning := p.Year - s.DateOfBirth.Year()
		if !transitionAges[turning] {
			continue
		}

		transitions = append(transitions, model.AgeTransition{
			ID:                 s.ID,
			Name:               s.Name,
			RegistrationNumber: s.RegistrationNumber,
			ClassCategory:      s.ClassCategory,
			DateOfBirth:        *s.DateOfBirth,
			BirthdayDate:       birthday,
			TurningAge:         turning,
			CurrentAgeRange:    AgeRange(turning - 1),
			NewAgeRange:        AgeRange(turning),
		})
	}

	sort.SliceStable(transitions, func(i, j int) bool {
		a, b := transitions[i], transitions[j]
		if !a.BirthdayDate.Equal(b.BirthdayDate.Time) {
			return a.BirthdayDate.Before(b.BirthdayDate)
		}
		return a.Name < b.Name
	})
	return transitions
}

func daysIn(year int, month time.Month) int {
	return model.NewDate(year, month+1, 0).Day()
}
