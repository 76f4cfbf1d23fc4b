// Package geolocation acquires the user's position, once or continuously.
package geolocation

import (
	"context"
	"errors"
	"time"

	"cinemap/models"
)

var (
	// ErrPermissionDenied is returned when the source refuses to locate the user.
	ErrPermissionDenied = errors.New("geolocation permission denied")
	// ErrPositionUnavailable is returned when the source cannot determine a position.
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrTimeout is returned when no position arrived within the allowed time.
	ErrTimeout = errors.New("geolocation timeout")
	// ErrUnsupported is returned when no position source is configured.
	ErrUnsupported = errors.New("geolocation not supported")
)

// Provider is a source of user positions.
type Provider interface {
	CurrentPosition(ctx context.Context) (models.Position, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (models.Position, error)

func (f ProviderFunc) CurrentPosition(ctx context.Context) (models.Position, error) {
	return f(ctx)
}

type acquireResult struct {
	pos models.Position
	err error
}

// Acquire asks p for a position and waits at most timeout. If the deadline
// passes first, ErrTimeout is returned and whatever p eventually delivers is
// dropped. Cancelling ctx abandons the request the same way.
func Acquire(ctx context.Context, p Provider, timeout time.Duration) (models.Position, error) {
	if p == nil {
		return models.Position{}, ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan acquireResult, 1)
	go func() {
		pos, err := p.CurrentPosition(ctx)
		done <- acquireResult{pos: pos, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return models.Position{}, classify(ctx, res.err)
		}
		if !res.pos.Valid() {
			return models.Position{}, ErrPositionUnavailable
		}
		return res.pos, nil
	case <-ctx.Done():
		return models.Position{}, classify(ctx, ctx.Err())
	}
}

// classify maps context errors onto the geolocation taxonomy and leaves the
// other errors untouched.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrPositionUnavailable),
		errors.Is(err, ErrTimeout), errors.Is(err, ErrUnsupported):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
