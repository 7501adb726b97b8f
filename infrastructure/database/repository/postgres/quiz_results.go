package postgres

import (
	"context"

	"verilearn.io/entities"
	"verilearn.io/infrastructure/database/dbx"
)

type quizResultRepository struct {
	db dbx.DBTX
}

func (r quizResultRepository) Insert(ctx context.Context, result *entities.QuizResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_results (id, id_card, quiz_id, grade, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		result.ID, result.IDCard, result.QuizID, result.Grade, result.CreatedAt,
	)
	return err
}

func (r quizResultRepository) ListByIDCard(ctx context.Context, idCard string) ([]entities.QuizResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, id_card, quiz_id, grade, created_at
		FROM quiz_results WHERE id_card = $1
		ORDER BY created_at DESC`, idCard,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []entities.QuizResult{}
	for rows.Next() {
		var result entities.QuizResult
		if err := rows.Scan(&result.ID, &result.IDCard, &result.QuizID, &result.Grade, &result.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
