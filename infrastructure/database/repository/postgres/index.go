// Package postgres implements the repository boundary over a Postgres
// database reached through the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"verilearn.io/application/repository"
	"verilearn.io/infrastructure/database/dbx"
)

type repositories struct {
	db dbx.DBTX
}

func (r repositories) Students() repository.StudentRepository {
	return studentRepository{db: r.db}
}

func (r repositories) AccessLogs() repository.AccessLogRepository {
	return accessLogRepository{db: r.db}
}

func (r repositories) Quizzes() repository.QuizRepository {
	return quizRepository{db: r.db}
}

func (r repositories) QuizResults() repository.QuizResultRepository {
	return quizResultRepository{db: r.db}
}

// Manager binds the repository bundle to the shared pool and runs
// transactional work over a tx-bound bundle.
type Manager struct {
	repositories
	pool *sql.DB
}

func NewManager(db *sql.DB) *Manager {
	return &Manager{repositories: repositories{db: db}, pool: db}
}

func (m *Manager) WithTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	return dbx.WithTx(ctx, m.pool, func(tx *sql.Tx) error {
		return fn(repositories{db: tx})
	})
}

const uniqueViolation = "23505"

// mapInsertError turns unique-constraint violations into the typed duplicate
// error the usecases key on.
func mapInsertError(err error, fieldByConstraint map[string]string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if field, ok := fieldByConstraint[pgErr.ConstraintName]; ok {
			return repository.DuplicateFieldError{Field: field}
		}
		return repository.DuplicateFieldError{Field: "record"}
	}
	return err
}
