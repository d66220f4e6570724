package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/errors"
	"closet/internal/model"
	"closet/internal/repository"
)

// EvaluationService lets a stylist issue verdicts on assigned users' items.
type EvaluationService interface {
	Upsert(ctx context.Context, caller auth.Identity, itemID uint, verdict model.EvaluationVerdict, comment string) (*model.ItemEvaluation, error)
	ListForItem(ctx context.Context, caller auth.Identity, itemID uint) ([]model.ItemEvaluation, error)
}

type evaluationService struct {
	evalRepo   repository.EvaluationRepository
	itemRepo   repository.ClothingItemRepository
	authorizer *authz.Authorizer
}

// NewEvaluationService creates a new evaluation service.
func NewEvaluationService(
	evalRepo repository.EvaluationRepository,
	itemRepo repository.ClothingItemRepository,
	authorizer *authz.Authorizer,
) EvaluationService {
	return &evaluationService{evalRepo: evalRepo, itemRepo: itemRepo, authorizer: authorizer}
}

// Upsert records the caller's verdict on an item, overwriting any previous
// verdict by the same stylist. The one-row-per-(item, stylist) invariant is
// enforced by the storage layer's atomic upsert, not a lookup-then-branch.
func (s *evaluationService) Upsert(ctx context.Context, caller auth.Identity, itemID uint, verdict model.EvaluationVerdict, comment string) (*model.ItemEvaluation, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	if !verdict.Valid() {
		return nil, errors.NewValidation("evaluation must be NECESSARY, UNNECESSARY or KEEP")
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch item: %w", err)
	}

	// The item's owner must be assigned to this stylist.
	if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, item.UserID); err != nil {
		return nil, err
	}

	eval := &model.ItemEvaluation{
		ItemID:     itemID,
		StylistID:  caller.UserID,
		Evaluation: verdict,
		Comment:    comment,
	}
	if err := s.evalRepo.Upsert(ctx, eval); err != nil {
		return nil, fmt.Errorf("upsert evaluation: %w", err)
	}

	// Re-read so updates return the surviving row, not the insert attempt.
	stored, err := s.evalRepo.FindByItemAndStylist(ctx, itemID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch evaluation: %w", err)
	}
	return stored, nil
}

// ListForItem returns an item's evaluations to its owner or to the owner's
// assigned stylist. Anyone else sees the same generic not-found.
func (s *evaluationService) ListForItem(ctx context.Context, caller auth.Identity, itemID uint) ([]model.ItemEvaluation, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch item: %w", err)
	}

	if caller.Role == model.RoleStylist {
		if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, item.UserID); err != nil {
			return nil, err
		}
	} else if err := authz.RequireOwner(caller.UserID, item.UserID); err != nil {
		return nil, err
	}

	return s.evalRepo.ListByItem(ctx, itemID)
}
