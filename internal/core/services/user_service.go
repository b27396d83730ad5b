package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserReader) portssvc.UserReaderSvc {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserReaderSvc = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return ensureUserExists(ctx, s.userRepo, userID)
}

// ensureUserExists loads the user and turns a miss into UserNotFound.
func ensureUserExists(ctx context.Context, repo portsrepo.UserReader, userID string) (*domain.User, error) {
	user, err := repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUserNotFound(userID)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if user == nil || !user.Active() {
		return nil, apperrors.NewUserNotFound(userID)
	}
	return user, nil
}
