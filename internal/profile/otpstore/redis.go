package otpstore

import (
	"context"
	"fmt"
	"time"

	redisclient "github.com/fitnexus/fitnexus-backend/pkg/redis"
)

// Redis keeps pending codes and locks in Redis, letting TTLs expire stale
// codes and abandoned locks without a sweeper.
type Redis struct {
	client *redisclient.Client
}

// NewRedis wraps the shared Redis client.
func NewRedis(client *redisclient.Client) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Redis{client: client}, nil
}

func (r *Redis) SaveCode(ctx context.Context, userID, code string, ttl time.Duration) error {
	return r.client.Set(ctx, r.client.OTPCodeKey(userID), code, ttl)
}

func (r *Redis) Code(ctx context.Context, userID string) (string, error) {
	code, err := r.client.Get(ctx, r.client.OTPCodeKey(userID))
	if err != nil {
		if redisclient.IsNil(err) {
			return "", ErrNoCode
		}
		return "", err
	}
	return code, nil
}

func (r *Redis) DeleteCode(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.client.OTPCodeKey(userID))
}

func (r *Redis) AcquireLock(ctx context.Context, userID string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, r.client.OTPLockKey(userID), "1", ttl)
}

func (r *Redis) ReleaseLock(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.client.OTPLockKey(userID))
}

func (r *Redis) MarkSent(ctx context.Context, userID string, window time.Duration) error {
	if window <= 0 {
		return r.client.Del(ctx, r.client.OTPSentKey(userID))
	}
	return r.client.Set(ctx, r.client.OTPSentKey(userID), "1", window)
}

func (r *Redis) RecentlySent(ctx context.Context, userID string) (bool, error) {
	_, err := r.client.Get(ctx, r.client.OTPSentKey(userID))
	if err != nil {
		if redisclient.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
