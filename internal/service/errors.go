package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopfront/catalog-api/internal/repository"
)

// DefaultQueryTimeout bounds every store call, connection acquisition included.
const DefaultQueryTimeout = 5 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultQueryTimeout
	}
	return context.WithTimeout(ctx, d)
}

// storeError converts infrastructure failures into application errors.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", apperrors.NewTimeoutError(op), err)
	case errors.Is(err, repository.ErrUnavailable):
		return fmt.Errorf("%w: %w", apperrors.NewServiceUnavailableError(op), err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
