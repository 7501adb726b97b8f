package auth_usecases

import (
	"context"
	"sync"
	"time"

	"verilearn.io/application/repository"
	"verilearn.io/entities"
)

// fakeManager implements the repository boundary in memory with the same
// open-row semantics the database enforces.
type fakeManager struct {
	mu             sync.Mutex
	students       map[string]*entities.Student
	logs           []*entities.AccessLog
	insertLoginErr error
}

func newFakeManager() *fakeManager {
	return &fakeManager{students: map[string]*entities.Student{}}
}

func (m *fakeManager) Students() repository.StudentRepository       { return fakeStudents{m} }
func (m *fakeManager) AccessLogs() repository.AccessLogRepository   { return fakeAccessLogs{m} }
func (m *fakeManager) Quizzes() repository.QuizRepository           { return nil }
func (m *fakeManager) QuizResults() repository.QuizResultRepository { return nil }

func (m *fakeManager) WithTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(m)
}

func (m *fakeManager) openRows(idCard string) []*entities.AccessLog {
	open := []*entities.AccessLog{}
	for _, log := range m.logs {
		if log.IDCard == idCard && log.LogoutTime == nil {
			open = append(open, log)
		}
	}
	return open
}

type fakeStudents struct{ m *fakeManager }

func (f fakeStudents) Create(_ context.Context, student *entities.Student) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	for _, existing := range f.m.students {
		if existing.Email == student.Email {
			return repository.DuplicateFieldError{Field: "email"}
		}
	}
	if _, ok := f.m.students[student.IDCard]; ok {
		return repository.DuplicateFieldError{Field: "id card"}
	}
	f.m.students[student.IDCard] = student
	return nil
}

func (f fakeStudents) FindByIDCard(_ context.Context, idCard string) (*entities.Student, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	student, ok := f.m.students[idCard]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return student, nil
}

type fakeAccessLogs struct{ m *fakeManager }

func (f fakeAccessLogs) InsertLogin(_ context.Context, log *entities.AccessLog) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.insertLoginErr != nil {
		return f.m.insertLoginErr
	}
	f.m.logs = append(f.m.logs, log)
	return nil
}

func (f fakeAccessLogs) CloseLatestOpen(_ context.Context, idCard string, at time.Time) (time.Time, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	var newest *entities.AccessLog
	for _, log := range f.m.logs {
		if log.IDCard != idCard || log.LogoutTime != nil {
			continue
		}
		if newest == nil || log.LoginTime.After(newest.LoginTime) {
			newest = log
		}
	}
	if newest == nil {
		return time.Time{}, repository.ErrNotFound
	}
	logoutTime := at
	duration := at.Sub(newest.LoginTime)
	newest.LogoutTime = &logoutTime
	newest.Duration = &duration
	return newest.LoginTime, nil
}

func (f fakeAccessLogs) ListByIDCard(_ context.Context, idCard string) ([]entities.AccessLog, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	logs := []entities.AccessLog{}
	for i := len(f.m.logs) - 1; i >= 0; i-- {
		if f.m.logs[i].IDCard == idCard {
			logs = append(logs, *f.m.logs[i])
		}
	}
	return logs, nil
}

// fakeFaces returns canned pipeline results.
type fakeFaces struct {
	captureErr error
	matched    bool
	score      float64
	compareErr error
}

func (f fakeFaces) CaptureEncoding(string) (*entities.FaceEncoding, error) {
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return &entities.FaceEncoding{Bytes: []byte{1, 2, 3, 4}, Height: 2, Width: 2}, nil
}

func (f fakeFaces) CompareEncodings(*entities.FaceEncoding, *entities.FaceEncoding) (bool, float64, error) {
	return f.matched, f.score, f.compareErr
}
