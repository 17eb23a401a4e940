package contracts

import (
	"context"
	"time"
)

// LockerService is a best-effort distributed lock. It narrows, but cannot
// close, the check-then-create race on "one IN_PROGRESS session per patient";
// the backend remains the owner of that invariant.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
