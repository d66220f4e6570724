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

// RecommendationInput carries purchase recommendation content.
type RecommendationInput struct {
	ItemType    string
	Description string
	Reason      string
	ProductURL  *string
	Priority    model.RecommendationPriority
}

// RecommendationService manages stylist purchase recommendations and the
// target user's acknowledgment lifecycle.
type RecommendationService interface {
	Create(ctx context.Context, caller auth.Identity, targetUserID uint, input RecommendationInput) (*model.PurchaseRecommendation, error)
	Edit(ctx context.Context, caller auth.Identity, recID uint, input RecommendationInput) (*model.PurchaseRecommendation, error)
	Delete(ctx context.Context, caller auth.Identity, recID uint) error
	UpdateStatus(ctx context.Context, caller auth.Identity, recID uint, status model.RecommendationStatus, declineReason *string) (*model.PurchaseRecommendation, error)
	ListForUser(ctx context.Context, userID uint) ([]model.PurchaseRecommendation, error)
	ListIssued(ctx context.Context, caller auth.Identity) ([]model.PurchaseRecommendation, error)
}

type recommendationService struct {
	recRepo    repository.RecommendationRepository
	authorizer *authz.Authorizer
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(recRepo repository.RecommendationRepository, authorizer *authz.Authorizer) RecommendationService {
	return &recommendationService{recRepo: recRepo, authorizer: authorizer}
}

func validateRecommendationInput(input RecommendationInput) error {
	if input.ItemType == "" {
		return errors.NewValidation("item_type is required")
	}
	if input.Description == "" {
		return errors.NewValidation("description is required")
	}
	if input.Reason == "" {
		return errors.NewValidation("reason is required")
	}
	if !input.Priority.Valid() {
		return errors.NewValidation("priority must be HIGH, MEDIUM or LOW")
	}
	return nil
}

// Create issues a recommendation to an assigned user, starting at PENDING.
func (s *recommendationService) Create(ctx context.Context, caller auth.Identity, targetUserID uint, input RecommendationInput) (*model.PurchaseRecommendation, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, targetUserID); err != nil {
		return nil, err
	}
	if err := validateRecommendationInput(input); err != nil {
		return nil, err
	}

	rec := &model.PurchaseRecommendation{
		UserID:      targetUserID,
		StylistID:   caller.UserID,
		ItemType:    input.ItemType,
		Description: input.Description,
		Reason:      input.Reason,
		ProductURL:  input.ProductURL,
		Priority:    input.Priority,
		Status:      model.RecommendationPending,
	}
	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return rec, nil
}

// Edit rewrites a recommendation's content. Issuing stylist only. Any edit
// force-resets the status to PENDING and clears the decline reason so the
// user must re-acknowledge the changed content, even from PURCHASED.
func (s *recommendationService) Edit(ctx context.Context, caller auth.Identity, recID uint, input RecommendationInput) (*model.PurchaseRecommendation, error) {
	rec, err := s.fetchIssued(ctx, caller, recID)
	if err != nil {
		return nil, err
	}
	if err := validateRecommendationInput(input); err != nil {
		return nil, err
	}

	rec.ItemType = input.ItemType
	rec.Description = input.Description
	rec.Reason = input.Reason
	rec.ProductURL = input.ProductURL
	rec.Priority = input.Priority
	rec.Status = model.RecommendationPending
	rec.DeclineReason = nil

	if err := s.recRepo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}
	return rec, nil
}

// Delete removes a recommendation. Issuing stylist only.
func (s *recommendationService) Delete(ctx context.Context, caller auth.Identity, recID uint) error {
	rec, err := s.fetchIssued(ctx, caller, recID)
	if err != nil {
		return err
	}
	if err := s.recRepo.Delete(ctx, rec.ID); err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	return nil
}

// UpdateStatus advances the acknowledgment machine. Target user only; the
// stylist cannot acknowledge on the user's behalf. DeclineReason is stored
// only when the new status is DECLINED and cleared on every other move.
func (s *recommendationService) UpdateStatus(ctx context.Context, caller auth.Identity, recID uint, status model.RecommendationStatus, declineReason *string) (*model.PurchaseRecommendation, error) {
	if !status.Valid() {
		return nil, errors.NewValidation("unknown status")
	}

	rec, err := s.fetch(ctx, recID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(caller.UserID, rec.UserID); err != nil {
		return nil, err
	}

	if !rec.Status.CanTransition(status) {
		return nil, errors.NewValidation(fmt.Sprintf("cannot move recommendation from %s to %s", rec.Status, status))
	}

	rec.Status = status
	if status == model.RecommendationDeclined {
		rec.DeclineReason = declineReason
	} else {
		rec.DeclineReason = nil
	}

	if err := s.recRepo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}
	return rec, nil
}

// ListForUser returns recommendations targeting the user.
func (s *recommendationService) ListForUser(ctx context.Context, userID uint) ([]model.PurchaseRecommendation, error) {
	return s.recRepo.ListByUser(ctx, userID)
}

// ListIssued returns recommendations the calling stylist issued.
func (s *recommendationService) ListIssued(ctx context.Context, caller auth.Identity) ([]model.PurchaseRecommendation, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	return s.recRepo.ListByStylist(ctx, caller.UserID)
}

func (s *recommendationService) fetch(ctx context.Context, recID uint) (*model.PurchaseRecommendation, error) {
	rec, err := s.recRepo.FindByID(ctx, recID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch recommendation: %w", err)
	}
	return rec, nil
}

// fetchIssued loads a recommendation and runs the role and author guards.
func (s *recommendationService) fetchIssued(ctx context.Context, caller auth.Identity, recID uint) (*model.PurchaseRecommendation, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	rec, err := s.fetch(ctx, recID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireRecordAuthor(caller.UserID, rec.StylistID); err != nil {
		return nil, err
	}
	return rec, nil
}
