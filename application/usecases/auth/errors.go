package auth_usecases

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileNotFound means no enrolled profile exists for the id card.
	ErrProfileNotFound = errors.New("no enrolled profile found for this id card")

	// ErrCredentialMismatch means the face matched but the password did not.
	ErrCredentialMismatch = errors.New("password does not match this profile")

	// ErrSessionNotFound means a logout arrived for an identity with no
	// open session.
	ErrSessionNotFound = errors.New("no active session found for this identity")
)

// BiometricMismatchError means the fresh capture scored above the acceptance
// threshold against the stored encoding.
type BiometricMismatchError struct {
	Score float64
}

func (e BiometricMismatchError) Error() string {
	return fmt.Sprintf("face does not match the enrolled profile (score %.2f)", e.Score)
}

// StoreError wraps a durable-store failure so the controller can separate it
// from domain rejections.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e StoreError) Unwrap() error {
	return e.Err
}
