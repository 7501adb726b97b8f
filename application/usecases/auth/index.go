// Package auth_usecases implements enrollment, face-verified login and
// session close over the repository and session boundaries.
package auth_usecases

import (
	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/cryptography"
	"verilearn.io/infrastructure/session"
)

// FaceVerifier is the slice of the biometric pipeline the usecases need.
type FaceVerifier interface {
	CaptureEncoding(dataURL string) (*entities.FaceEncoding, error)
	CompareEncodings(fresh *entities.FaceEncoding, stored *entities.FaceEncoding) (bool, float64, error)
}

type UseCase struct {
	Repos    repository.Manager
	Sessions session.Store
	Faces    FaceVerifier

	hashPassword   func(password string) ([]byte, error)
	verifyPassword func(hash string, candidate string) bool
}

func New(repos repository.Manager, sessions session.Store, faces FaceVerifier) *UseCase {
	return &UseCase{
		Repos:          repos,
		Sessions:       sessions,
		Faces:          faces,
		hashPassword:   cryptography.HashPassword,
		verifyPassword: cryptography.VerifyPassword,
	}
}
