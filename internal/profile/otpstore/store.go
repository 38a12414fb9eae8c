// Package otpstore persists pending phone-verification codes and the
// per-user locks serializing OTP operations.
package otpstore

import (
	"context"
	"errors"
	"time"
)

// ErrNoCode marks the absence of a pending verification code, either
// because none was requested or because it expired.
var ErrNoCode = errors.New("no pending verification code")

// Store is the persistence surface the profile lifecycle needs for OTP.
type Store interface {
	// SaveCode stores the pending code for the user, replacing any
	// previous one (resend).
	SaveCode(ctx context.Context, userID, code string, ttl time.Duration) error
	// Code returns the pending code or ErrNoCode.
	Code(ctx context.Context, userID string) (string, error)
	// DeleteCode clears the pending code after successful verification.
	DeleteCode(ctx context.Context, userID string) error
	// AcquireLock takes the per-user OTP lock; false means another
	// operation holds it.
	AcquireLock(ctx context.Context, userID string, ttl time.Duration) (bool, error)
	// ReleaseLock frees the per-user OTP lock.
	ReleaseLock(ctx context.Context, userID string) error
	// MarkSent records a successful delivery, starting the resend window.
	MarkSent(ctx context.Context, userID string, window time.Duration) error
	// RecentlySent reports whether a delivery happened within the
	// resend window.
	RecentlySent(ctx context.Context, userID string) (bool, error)
}
