package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	syncLockKey = "catalog:sync:lock"
	// syncLockTTL bounds how long a crashed run can block the next one.
	syncLockTTL = 5 * time.Minute
)

// SyncLock implements ports.SyncLock with a single SETNX key so that two
// admins cannot trigger overlapping catalog syncs.
type SyncLock struct {
	client *redis.Client
}

func NewSyncLock(client *redis.Client) *SyncLock {
	return &SyncLock{client: client}
}

// Acquire returns false when another sync run currently holds the lock.
func (l *SyncLock) Acquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, syncLockKey, "1", syncLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire sync lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock for the next run.
func (l *SyncLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, syncLockKey).Err(); err != nil {
		return fmt.Errorf("release sync lock: %w", err)
	}
	return nil
}
