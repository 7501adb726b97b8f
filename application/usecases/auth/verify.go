package auth_usecases

import (
	"context"
	"errors"
	"time"

	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/logger"
)

type VerifiedIdentity struct {
	IDCard    string
	FirstName string
	Role      entities.StudentRole
}

// Verify runs the full login check: profile lookup, face comparison, then
// password. Only after both factors pass does it touch the access log: any
// still-open row is closed and a new one opened inside one transaction, so a
// re-login never leaks a second open row.
func (uc *UseCase) Verify(ctx context.Context, idCard string, imageDataURL string, password string) (*VerifiedIdentity, error) {
	student, err := uc.Repos.Students().FindByIDCard(ctx, idCard)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, StoreError{Op: "login", Err: err}
	}

	fresh, err := uc.Faces.CaptureEncoding(imageDataURL)
	if err != nil {
		return nil, err
	}
	matched, score, err := uc.Faces.CompareEncodings(fresh, &student.Face)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, BiometricMismatchError{Score: score}
	}

	if !uc.verifyPassword(student.PasswordHash, password) {
		return nil, ErrCredentialMismatch
	}

	loginTime := time.Now()
	err = uc.Repos.WithTx(ctx, func(r repository.Repositories) error {
		if _, err := r.AccessLogs().CloseLatestOpen(ctx, idCard, loginTime); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return r.AccessLogs().InsertLogin(ctx, entities.AccessLog{
			IDCard:    idCard,
			LoginTime: loginTime,
		}.ParseModel())
	})
	if errors.Is(err, repository.ErrOpenSessionConflict) {
		return nil, err
	}
	if err != nil {
		return nil, StoreError{Op: "login", Err: err}
	}

	if err := uc.Sessions.Open(ctx, idCard, loginTime); err != nil {
		// The durable row is already committed and wins on the next
		// request, but losing the store update deserves a loud trace.
		logger.Error("session store update lost after committed login", logger.LoggerOptions{
			Key:  "idCard",
			Data: idCard,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}

	return &VerifiedIdentity{
		IDCard:    student.IDCard,
		FirstName: student.FirstName,
		Role:      student.Role,
	}, nil
}
