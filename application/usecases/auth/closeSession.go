package auth_usecases

import (
	"context"
	"errors"
	"time"

	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/logger"
)

// CloseSession ends the identity's open session. The session store gates the
// request; the durable row supplies the authoritative login time for the
// duration.
func (uc *UseCase) CloseSession(ctx context.Context, idCard string) (time.Duration, error) {
	if _, err := uc.Sessions.Lookup(ctx, idCard); err != nil {
		return 0, ErrSessionNotFound
	}

	logoutTime := time.Now()
	loginTime, err := uc.Repos.AccessLogs().CloseLatestOpen(ctx, idCard, logoutTime)
	if errors.Is(err, repository.ErrNotFound) {
		// Store said logged in, durable log disagrees. Drop the stale
		// entry so the states reconverge, and report the divergence.
		logger.Error("session store and access log diverged on logout", logger.LoggerOptions{
			Key:  "idCard",
			Data: idCard,
		})
		_ = uc.Sessions.Close(ctx, idCard)
		return 0, StoreError{Op: "logout", Err: err}
	}
	if err != nil {
		return 0, StoreError{Op: "logout", Err: err}
	}

	if err := uc.Sessions.Close(ctx, idCard); err != nil {
		logger.Warning("session entry already gone at logout", logger.LoggerOptions{
			Key:  "idCard",
			Data: idCard,
		})
	}
	return logoutTime.Sub(loginTime), nil
}

// History returns the identity's access-log rows, newest first.
func (uc *UseCase) History(ctx context.Context, idCard string) ([]entities.AccessLog, error) {
	logs, err := uc.Repos.AccessLogs().ListByIDCard(ctx, idCard)
	if err != nil {
		return nil, StoreError{Op: "history", Err: err}
	}
	return logs, nil
}
