package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/gorm"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/errors"
	"closet/internal/model"
	"closet/internal/repository"
)

// CreateItemInput carries validated-at-the-boundary attributes for a new item.
type CreateItemInput struct {
	ImageURL     string
	Category     model.ItemCategory
	Color        string
	Brand        *string
	Description  *string
	PurchaseDate *time.Time
}

// ClothingItemService manages a user's own wardrobe. Every operation is
// scoped to the calling user; stylists read items through the evaluation
// and outfit flows, never here.
type ClothingItemService interface {
	Create(ctx context.Context, userID uint, input CreateItemInput) (*model.ClothingItem, error)
	List(ctx context.Context, userID uint, category *model.ItemCategory, status *model.ItemStatus) ([]model.ClothingItem, error)
	ListForStylist(ctx context.Context, caller auth.Identity, targetUserID uint, category *model.ItemCategory) ([]model.ClothingItem, error)
	Get(ctx context.Context, userID, itemID uint) (*model.ClothingItem, error)
	Transition(ctx context.Context, userID, itemID uint, action model.ItemAction) (*model.ClothingItem, error)
}

type clothingItemService struct {
	itemRepo   repository.ClothingItemRepository
	authorizer *authz.Authorizer
}

// NewClothingItemService creates a new clothing item service.
func NewClothingItemService(itemRepo repository.ClothingItemRepository, authorizer *authz.Authorizer) ClothingItemService {
	return &clothingItemService{itemRepo: itemRepo, authorizer: authorizer}
}

// Create adds an item to the caller's own wardrobe. No ownership guard:
// creation is always for self.
func (s *clothingItemService) Create(ctx context.Context, userID uint, input CreateItemInput) (*model.ClothingItem, error) {
	if !input.Category.Valid() {
		return nil, errors.NewValidation("unknown category")
	}
	if input.Color == "" {
		return nil, errors.NewValidation("color is required")
	}
	if u, err := url.Parse(input.ImageURL); err != nil || u.Scheme == "" && u.Path == "" {
		return nil, errors.NewValidation("image_url must be a valid URL")
	}

	item := &model.ClothingItem{
		UserID:       userID,
		ImageURL:     input.ImageURL,
		Category:     input.Category,
		Color:        input.Color,
		Brand:        input.Brand,
		Description:  input.Description,
		PurchaseDate: input.PurchaseDate,
		Status:       model.ItemStatusActive,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// List returns the caller's items. Status defaults to ACTIVE, which keeps
// DISPOSED rows out of every default listing.
func (s *clothingItemService) List(ctx context.Context, userID uint, category *model.ItemCategory, status *model.ItemStatus) ([]model.ClothingItem, error) {
	filter := repository.ItemFilter{Status: model.ItemStatusActive}
	if status != nil {
		if !status.Valid() {
			return nil, errors.NewValidation("unknown status")
		}
		filter.Status = *status
	}
	if category != nil {
		if !category.Valid() {
			return nil, errors.NewValidation("unknown category")
		}
		filter.Category = category
	}
	return s.itemRepo.ListByUser(ctx, userID, filter)
}

// ListForStylist returns an assigned user's ACTIVE items so the stylist can
// evaluate them and assemble outfits. Reads only; stylists never mutate items.
func (s *clothingItemService) ListForStylist(ctx context.Context, caller auth.Identity, targetUserID uint, category *model.ItemCategory) ([]model.ClothingItem, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, targetUserID); err != nil {
		return nil, err
	}

	filter := repository.ItemFilter{Status: model.ItemStatusActive}
	if category != nil {
		if !category.Valid() {
			return nil, errors.NewValidation("unknown category")
		}
		filter.Category = category
	}
	return s.itemRepo.ListByUser(ctx, targetUserID, filter)
}

// Get returns one item, owner only.
func (s *clothingItemService) Get(ctx context.Context, userID, itemID uint) (*model.ClothingItem, error) {
	item, err := s.fetchOwned(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Transition applies a named action to the item's status machine. Unknown
// actions are validation errors; unreachable transitions are rejected.
func (s *clothingItemService) Transition(ctx context.Context, userID, itemID uint, action model.ItemAction) (*model.ClothingItem, error) {
	target, ok := action.TargetStatus()
	if !ok {
		return nil, errors.NewValidation("unknown action")
	}

	item, err := s.fetchOwned(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if !item.Status.CanTransition(target) {
		return nil, errors.NewValidation(fmt.Sprintf("cannot %s an item in status %s", action, item.Status))
	}

	if err := s.itemRepo.UpdateStatus(ctx, itemID, target); err != nil {
		return nil, fmt.Errorf("update item status: %w", err)
	}
	item.Status = target
	return item, nil
}

// fetchOwned loads the item and runs the ownership guard. Missing and
// not-owned collapse to the same not-found.
func (s *clothingItemService) fetchOwned(ctx context.Context, userID, itemID uint) (*model.ClothingItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch item: %w", err)
	}
	if err := authz.RequireOwner(userID, item.UserID); err != nil {
		return nil, err
	}
	return item, nil
}
