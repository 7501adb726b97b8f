// Package repository declares the persistence boundary the usecases depend
// on. Implementations live under infrastructure/database/repository.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"verilearn.io/entities"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrOpenSessionConflict means a concurrent login opened a row for the same
// identity first; the caller should retry, not treat it as a duplicate
// profile.
var ErrOpenSessionConflict = errors.New("another open session exists for this identity")

// DuplicateFieldError reports a unique-constraint violation on insert.
type DuplicateFieldError struct {
	Field string
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("a profile with this %s already exists", e.Field)
}

type StudentRepository interface {
	Create(ctx context.Context, student *entities.Student) error
	FindByIDCard(ctx context.Context, idCard string) (*entities.Student, error)
}

type AccessLogRepository interface {
	InsertLogin(ctx context.Context, log *entities.AccessLog) error
	// CloseLatestOpen stamps the newest open row for the card with the logout
	// time and its duration, returning the row's login time. ErrNotFound when
	// no open row exists.
	CloseLatestOpen(ctx context.Context, idCard string, at time.Time) (time.Time, error)
	ListByIDCard(ctx context.Context, idCard string) ([]entities.AccessLog, error)
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *entities.Quiz) error
	FindByID(ctx context.Context, id string) (*entities.Quiz, error)
	List(ctx context.Context) ([]entities.Quiz, error)
	ListPosted(ctx context.Context) ([]entities.Quiz, error)
	SetPosted(ctx context.Context, id string, posted bool) error
}

type QuizResultRepository interface {
	Insert(ctx context.Context, result *entities.QuizResult) error
	ListByIDCard(ctx context.Context, idCard string) ([]entities.QuizResult, error)
}

// Repositories bundles every repository over one underlying handle, either
// the shared pool or a single transaction.
type Repositories interface {
	Students() StudentRepository
	AccessLogs() AccessLogRepository
	Quizzes() QuizRepository
	QuizResults() QuizResultRepository
}

// Manager is the pool-bound bundle plus transactional execution.
type Manager interface {
	Repositories
	WithTx(ctx context.Context, fn func(r Repositories) error) error
}
