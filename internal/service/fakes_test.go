package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lionsacademy/register-backend/internal/model"
	"github.com/lionsacademy/register-backend/internal/repository"
	"github.com/rs/zerolog"
)

var testLog = zerolog.Nop()

func fixedClock(t time.Time) Clock {
	return Clock{Now: func() time.Time { return t }, Location: time.UTC}
}

func ptr[T any](v T) *T { return &v }

func mustDate(s string) *model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

// fakeStudentStore keeps students in memory and enforces registration
// number uniqueness the way the database constraint does.
type fakeStudentStore struct {
	mu       sync.Mutex
	students map[int]model.Student
	nextID   int
	err      error
}

func newFakeStudentStore(students ...model.Student) *fakeStudentStore {
	f := &fakeStudentStore{students: make(map[int]model.Student)}
	for _, s := range students {
		f.students[s.ID] = s
		if s.ID > f.nextID {
			f.nextID = s.ID
		}
	}
	return f
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *fakeStudentStore) GetActiveByID(ctx context.Context, id int) (*model.Student, error) {
	s, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) sorted() []model.Student {
	out := make([]model.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeStudentStore) List(ctx context.Context, filter model.StudentFilter) ([]model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Student{}
	for _, s := range f.sorted() {
		if filter.Category != nil && s.ClassCategory != *filter.Category {
			continue
		}
		if filter.Active != nil && s.Active != *filter.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) ListActiveWithBirthDate(ctx context.Context) ([]model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Student{}
	for _, s := range f.sorted() {
		if s.Active && s.DateOfBirth != nil {
			out = append(out, s)
		}
	}
	return out, f.err
}

func (f *fakeStudentStore) Search(ctx context.Context, query string, limit int) ([]model.StudentSearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	q := strings.ToLower(query)
	out := []model.StudentSearchResult{}
	for _, s := range f.sorted() {
		if !s.Active {
			continue
		}
		reg := ""
		if s.RegistrationNumber != nil {
			reg = strings.ToLower(*s.RegistrationNumber)
		}
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(reg, q) {
			out = append(out, model.StudentSearchResult{ID: s.ID, Name: s.Name, ClassCategory: s.ClassCategory})
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStudentStore) duplicateRegistration(s *model.Student) bool {
	if s.RegistrationNumber == nil {
		return false
	}
	for id, existing := range f.students {
		if id != s.ID && existing.RegistrationNumber != nil && *existing.RegistrationNumber == *s.RegistrationNumber {
			return true
		}
	}
	return false
}

func (f *fakeStudentStore) Create(ctx context.Context, s *model.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.duplicateRegistration(s) {
		return repository.ErrDuplicateRegistration
	}
	f.nextID++
	s.ID = f.nextID
	f.students[s.ID] = *s
	return nil
}

func (f *fakeStudentStore) Update(ctx context.Context, s *model.Student, active *bool) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	existing, ok := f.students[s.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if f.duplicateRegistration(s) {
		return nil, repository.ErrDuplicateRegistration
	}
	updated := *s
	updated.Active = existing.Active
	if active != nil {
		updated.Active = *active
	}
	f.students[s.ID] = updated
	return &updated, nil
}

func (f *fakeStudentStore) Deactivate(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Active = false
	f.students[id] = s
	return nil
}

type attendanceKey struct {
	studentID int
	day       model.Date
}

// fakeAttendanceStore rejects a second entry for the same student and day.
type fakeAttendanceStore struct {
	mu      sync.Mutex
	entries map[int]model.AttendanceEntry
	byDay   map[attendanceKey]int
	nextID  int
	err     error
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{
		entries: make(map[int]model.AttendanceEntry),
		byDay:   make(map[attendanceKey]int),
	}
}

func (f *fakeAttendanceStore) Create(ctx context.Context, studentID int, day model.Date) (*model.AttendanceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := attendanceKey{studentID, day}
	if _, ok := f.byDay[key]; ok {
		return nil, repository.ErrDuplicateAttendance
	}
	f.nextID++
	e := model.AttendanceEntry{ID: f.nextID, StudentID: studentID, AttendanceDate: day}
	f.entries[e.ID] = e
	f.byDay[key] = e.ID
	return &e, nil
}

func (f *fakeAttendanceStore) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(f.entries, id)
	delete(f.byDay, attendanceKey{e.StudentID, e.AttendanceDate})
	return nil
}

func (f *fakeAttendanceStore) List(ctx context.Context, filter model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []model.AttendanceRecord{}
	for _, e := range f.entries {
		if filter.StudentID != nil && e.StudentID != *filter.StudentID {
			continue
		}
		out = append(out, model.AttendanceRecord{AttendanceEntry: e})
	}
	return out, nil
}

type fakeReportStore struct {
	counts      []model.StudentAttendanceCount
	err         error
	gotCategory *model.ClassCategory
	gotPeriod   *model.Period
}

func (f *fakeReportStore) CountsByStudent(ctx context.Context, category *model.ClassCategory, period *model.Period) ([]model.StudentAttendanceCount, error) {
	f.gotCategory = category
	f.gotPeriod = period
	return f.counts, f.err
}

type fakeAdminStore struct {
	admins map[string]*model.Admin
	nextID int
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*model.Admin)}
}

func (f *fakeAdminStore) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminStore) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	a, ok := f.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) Create(ctx context.Context, a *model.Admin) error {
	if _, ok := f.admins[a.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.admins[a.Username] = &cp
	return nil
}

func (f *fakeAdminStore) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	for _, a := range f.admins {
		if a.ID == id {
			a.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrNotFound
}
