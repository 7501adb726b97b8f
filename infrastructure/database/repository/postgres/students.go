package postgres

import (
	"context"
	"database/sql"
	"errors"

	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/database/dbx"
)

type studentRepository struct {
	db dbx.DBTX
}

var studentConstraints = map[string]string{
	"students_id_card_key": "id card",
	"students_email_key":   "email",
}

func (r studentRepository) Create(ctx context.Context, student *entities.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO students (
			id, first_name, last_name, age, level, id_card, email,
			password_hash, face_encoding, face_height, face_width, role,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		student.ID, student.FirstName, student.LastName, student.Age,
		student.Level, student.IDCard, student.Email, student.PasswordHash,
		student.Face.Bytes, student.Face.Height, student.Face.Width,
		student.Role, student.CreatedAt, student.UpdatedAt,
	)
	if err != nil {
		return mapInsertError(err, studentConstraints)
	}
	return nil
}

func (r studentRepository) FindByIDCard(ctx context.Context, idCard string) (*entities.Student, error) {
	var student entities.Student
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, age, level, id_card, email,
			password_hash, face_encoding, face_height, face_width, role,
			created_at, updated_at
		FROM students WHERE id_card = $1`, idCard,
	).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Age,
		&student.Level, &student.IDCard, &student.Email, &student.PasswordHash,
		&student.Face.Bytes, &student.Face.Height, &student.Face.Width,
		&student.Role, &student.CreatedAt, &student.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}
