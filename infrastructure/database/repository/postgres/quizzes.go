package postgres

import (
	"context"
	"database/sql"
	"errors"

	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/database/dbx"
)

type quizRepository struct {
	db dbx.DBTX
}

func (r quizRepository) Create(ctx context.Context, quiz *entities.Quiz) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quizzes (id, title, questions, created_by, posted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		quiz.ID, quiz.Title, []byte(quiz.Questions), quiz.CreatedBy, quiz.Posted, quiz.CreatedAt,
	)
	return err
}

func (r quizRepository) FindByID(ctx context.Context, id string) (*entities.Quiz, error) {
	var quiz entities.Quiz
	var questions []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, questions, created_by, posted, created_at
		FROM quizzes WHERE id = $1`, id,
	).Scan(&quiz.ID, &quiz.Title, &questions, &quiz.CreatedBy, &quiz.Posted, &quiz.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions
	return &quiz, nil
}

func (r quizRepository) List(ctx context.Context) ([]entities.Quiz, error) {
	return r.list(ctx, `
		SELECT id, title, questions, created_by, posted, created_at
		FROM quizzes ORDER BY created_at DESC`)
}

func (r quizRepository) ListPosted(ctx context.Context) ([]entities.Quiz, error) {
	return r.list(ctx, `
		SELECT id, title, questions, created_by, posted, created_at
		FROM quizzes WHERE posted ORDER BY created_at DESC`)
}

func (r quizRepository) list(ctx context.Context, query string) ([]entities.Quiz, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := []entities.Quiz{}
	for rows.Next() {
		var quiz entities.Quiz
		var questions []byte
		if err := rows.Scan(&quiz.ID, &quiz.Title, &questions, &quiz.CreatedBy, &quiz.Posted, &quiz.CreatedAt); err != nil {
			return nil, err
		}
		quiz.Questions = questions
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

func (r quizRepository) SetPosted(ctx context.Context, id string, posted bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE quizzes SET posted = $2 WHERE id = $1`, id, posted)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
