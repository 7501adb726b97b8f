// Package session tracks which identities currently hold an open session.
// The durable access log remains the source of truth; this store only makes
// the logged-in check cheap.
package session

import (
	"context"
	"errors"
	"os"
	"time"

	"verilearn.io/infrastructure/database/connection/cache"
)

// ErrNoSession is returned when an identity has no open session recorded.
var ErrNoSession = errors.New("no active session for this identity")

type Store interface {
	Open(ctx context.Context, idCard string, loginTime time.Time) error
	Lookup(ctx context.Context, idCard string) (time.Time, error)
	Close(ctx context.Context, idCard string) error
}

var defaultStore Store

// InitialiseStore picks the backend from SESSION_STORE. Anything other than
// "redis" gets the in-process map.
func InitialiseStore() {
	if os.Getenv("SESSION_STORE") == "redis" {
		defaultStore = NewRedisStore(cache.Client)
		return
	}
	defaultStore = NewMemoryStore()
}

func DefaultStore() Store {
	return defaultStore
}
