package service

import (
	"context"
	"fmt"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/model"
	"closet/internal/repository"
)

// UserService exposes the stylist's view of their assigned users.
type UserService interface {
	ListAssigned(ctx context.Context, caller auth.Identity) ([]model.User, error)
	GetAssigned(ctx context.Context, caller auth.Identity, userID uint) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	authorizer *authz.Authorizer
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, authorizer *authz.Authorizer) UserService {
	return &userService{userRepo: userRepo, authorizer: authorizer}
}

// ListAssigned returns the users assigned to the calling stylist.
func (s *userService) ListAssigned(ctx context.Context, caller auth.Identity) ([]model.User, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListByAssignedStylist(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list assigned users: %w", err)
	}
	return users, nil
}

// GetAssigned returns one assigned user, or the generic not-found for users
// belonging to anyone else.
func (s *userService) GetAssigned(ctx context.Context, caller auth.Identity, userID uint) (*model.User, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	return s.authorizer.RequireAssignedUser(ctx, caller.UserID, userID)
}
