package repositories

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// UserReader is the existence check every owner-scoped valuation starts with.
type UserReader interface {
	// FindUserByID returns apperrors.ErrNotFound when no row matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
