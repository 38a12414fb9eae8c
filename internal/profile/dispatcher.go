package profile

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/fitnexus/fitnexus-backend/pkg/logger"
)

// Dispatcher delivers a verification code to a phone number. Implementations
// wrap an SMS provider; the simulated dispatcher stands in for one during
// development.
type Dispatcher interface {
	Deliver(ctx context.Context, phone, code string) error
}

// SimulatedDispatcher logs the code instead of sending it, after an
// artificial delay that mimics provider latency.
type SimulatedDispatcher struct {
	Latency time.Duration
	Logger  *logger.Logger
}

func (d *SimulatedDispatcher) Deliver(ctx context.Context, phone, code string) error {
	if d.Latency > 0 {
		select {
		case <-time.After(d.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if d.Logger != nil {
		ctx = d.Logger.WithFields(ctx, map[string]any{"phone": phone, "code": code})
		d.Logger.Info(ctx, "simulated sms delivery")
	}
	return nil
}

// generateCode produces a uniformly random 6-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
