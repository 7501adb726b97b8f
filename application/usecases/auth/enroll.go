package auth_usecases

import (
	"context"

	"verilearn.io/entities"
	"verilearn.io/infrastructure/logger"
)

type EnrollParams struct {
	FirstName    string
	LastName     string
	Age          int
	Level        string
	IDCard       string
	Email        string
	Password     string
	ImageDataURL string
	Role         entities.StudentRole
}

// Enroll captures a face encoding from the submitted frame, hashes the
// password and persists the profile. Biometric rejections and duplicate
// profiles surface as their typed errors.
func (uc *UseCase) Enroll(ctx context.Context, params EnrollParams) (string, error) {
	encoding, err := uc.Faces.CaptureEncoding(params.ImageDataURL)
	if err != nil {
		return "", err
	}

	hash, err := uc.hashPassword(params.Password)
	if err != nil {
		return "", StoreError{Op: "enroll", Err: err}
	}

	role := params.Role
	if role == "" {
		role = entities.StudentRoleStudent
	}
	student := entities.Student{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Age:          params.Age,
		Level:        params.Level,
		IDCard:       params.IDCard,
		Email:        params.Email,
		PasswordHash: string(hash),
		Face:         *encoding,
		Role:         role,
	}.ParseModel()

	if err := uc.Repos.Students().Create(ctx, student); err != nil {
		return "", err
	}
	logger.Info("enrolled new profile", logger.LoggerOptions{
		Key:  "idCard",
		Data: student.IDCard,
	})
	return student.ID, nil
}
