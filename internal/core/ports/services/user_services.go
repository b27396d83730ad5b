package services

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// UserReaderSvc exposes the authenticated owner's profile.
type UserReaderSvc interface {
	// GetUserByID fails with UserNotFound for unknown or soft-deleted users.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
