// Package authz is the authorization core: guard predicates evaluated
// before any mutation runs. Guards only read, fail closed, and are chained
// left-to-right by the services, short-circuiting on the first failure.
package authz

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"closet/internal/errors"
	"closet/internal/model"
	"closet/internal/repository"
)

// RequireRole denies callers whose role differs from required.
func RequireRole(role, required model.Role) error {
	if role != required {
		return errors.ErrForbidden
	}
	return nil
}

// RequireOwner denies callers acting on a resource they do not own. The
// error is the same generic not-found used for missing resources, so a
// response never reveals that the resource exists under someone else.
func RequireOwner(callerID, ownerID uint) error {
	if callerID != ownerID {
		return errors.ErrNotFoundOrForbidden
	}
	return nil
}

// RequireRecordAuthor denies stylists mutating a record another stylist
// authored (evaluations, recommendations, stylist outfits). Same generic
// signal as RequireOwner, for the same reason.
func RequireRecordAuthor(stylistID, recordStylistID uint) error {
	if stylistID != recordStylistID {
		return errors.ErrNotFoundOrForbidden
	}
	return nil
}

// Authorizer evaluates guards that need a user lookup.
type Authorizer struct {
	users repository.UserRepository
}

// New builds an Authorizer over the user repository.
func New(users repository.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

// RequireAssignedUser checks that targetUserID names an existing USER whose
// assigned stylist is stylistID, and returns that user. A missing user, a
// non-USER role, and an assignment to someone else all produce the same
// generic not-found, so probing other stylists' user ids enumerates nothing.
func (a *Authorizer) RequireAssignedUser(ctx context.Context, stylistID, targetUserID uint) (*model.User, error) {
	target, err := a.users.FindByID(ctx, targetUserID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch target user: %w", err)
	}
	if target.Role != model.RoleUser {
		return nil, errors.ErrNotFoundOrForbidden
	}
	if target.AssignedStylistID == nil || *target.AssignedStylistID != stylistID {
		return nil, errors.ErrNotFoundOrForbidden
	}
	return target, nil
}
