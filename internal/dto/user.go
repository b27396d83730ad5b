package dto

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
