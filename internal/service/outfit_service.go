package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/errors"
	"closet/internal/model"
	"closet/internal/repository"
)

// outfitTxTimeout bounds the outfit + join row transaction.
const outfitTxTimeout = 10 * time.Second

// OutfitInput carries outfit attributes common to create and update.
type OutfitInput struct {
	Title          string
	ItemIDs        []uint
	StylistComment *string
	Tips           *string
	StylingAdvice  *string
}

// OutfitService assembles outfits from a user's items. Stylists act only
// within their assigned user set; users act only on themselves.
type OutfitService interface {
	Create(ctx context.Context, caller auth.Identity, targetUserID uint, input OutfitInput) (*model.Outfit, error)
	Update(ctx context.Context, caller auth.Identity, outfitID uint, input OutfitInput) (*model.Outfit, error)
	Delete(ctx context.Context, caller auth.Identity, outfitID uint) error
	Get(ctx context.Context, caller auth.Identity, outfitID uint) (*model.Outfit, error)
	ListForUser(ctx context.Context, userID uint) ([]model.Outfit, error)
	ListMine(ctx context.Context, caller auth.Identity) ([]model.Outfit, error)
}

type outfitService struct {
	outfitRepo repository.OutfitRepository
	itemRepo   repository.ClothingItemRepository
	authorizer *authz.Authorizer
}

// NewOutfitService creates a new outfit service.
func NewOutfitService(
	outfitRepo repository.OutfitRepository,
	itemRepo repository.ClothingItemRepository,
	authorizer *authz.Authorizer,
) OutfitService {
	return &outfitService{outfitRepo: outfitRepo, itemRepo: itemRepo, authorizer: authorizer}
}

// Create builds an outfit for targetUserID. A stylist must own the target
// user; a regular user can only target themselves. Every item id must
// resolve to an ACTIVE item owned by the target user, checked as a single
// count comparison, and the outfit plus its join rows land in one
// transaction so a failure leaves nothing behind.
func (s *outfitService) Create(ctx context.Context, caller auth.Identity, targetUserID uint, input OutfitInput) (*model.Outfit, error) {
	if caller.Role == model.RoleStylist {
		if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, targetUserID); err != nil {
			return nil, err
		}
	} else if err := authz.RequireOwner(caller.UserID, targetUserID); err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, errors.NewValidation("title is required")
	}
	if err := s.checkItems(ctx, targetUserID, input.ItemIDs); err != nil {
		return nil, err
	}

	outfit := &model.Outfit{
		UserID:         targetUserID,
		CreatedByID:    caller.UserID,
		Title:          input.Title,
		StylistComment: input.StylistComment,
		Tips:           input.Tips,
		StylingAdvice:  input.StylingAdvice,
	}

	txCtx, cancel := context.WithTimeout(ctx, outfitTxTimeout)
	defer cancel()
	if err := s.outfitRepo.CreateWithItems(txCtx, outfit, input.ItemIDs); err != nil {
		return nil, fmt.Errorf("create outfit: %w", err)
	}

	return s.outfitRepo.FindByID(ctx, outfit.ID)
}

// Update rewrites an outfit's content and item set. Only the author may
// update; a stylist author must additionally still own the target user.
func (s *outfitService) Update(ctx context.Context, caller auth.Identity, outfitID uint, input OutfitInput) (*model.Outfit, error) {
	outfit, err := s.fetchAuthored(ctx, caller, outfitID)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, errors.NewValidation("title is required")
	}
	if err := s.checkItems(ctx, outfit.UserID, input.ItemIDs); err != nil {
		return nil, err
	}

	outfit.Title = input.Title
	outfit.StylistComment = input.StylistComment
	outfit.Tips = input.Tips
	outfit.StylingAdvice = input.StylingAdvice

	txCtx, cancel := context.WithTimeout(ctx, outfitTxTimeout)
	defer cancel()
	if err := s.outfitRepo.UpdateWithItems(txCtx, outfit, input.ItemIDs); err != nil {
		return nil, fmt.Errorf("update outfit: %w", err)
	}

	return s.outfitRepo.FindByID(ctx, outfit.ID)
}

// Delete removes an outfit and its join rows. Author only.
func (s *outfitService) Delete(ctx context.Context, caller auth.Identity, outfitID uint) error {
	outfit, err := s.fetchAuthored(ctx, caller, outfitID)
	if err != nil {
		return err
	}
	if err := s.outfitRepo.Delete(ctx, outfit.ID); err != nil {
		return fmt.Errorf("delete outfit: %w", err)
	}
	return nil
}

// Get returns an outfit to its target user, its author, or the target
// user's current stylist.
func (s *outfitService) Get(ctx context.Context, caller auth.Identity, outfitID uint) (*model.Outfit, error) {
	outfit, err := s.outfitRepo.FindByID(ctx, outfitID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch outfit: %w", err)
	}

	if caller.UserID == outfit.UserID || caller.UserID == outfit.CreatedByID {
		return outfit, nil
	}
	if caller.Role == model.RoleStylist {
		if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, outfit.UserID); err != nil {
			return nil, err
		}
		return outfit, nil
	}
	return nil, errors.ErrNotFoundOrForbidden
}

// ListForUser is the self view: every outfit targeting the user, whoever
// authored it.
func (s *outfitService) ListForUser(ctx context.Context, userID uint) ([]model.Outfit, error) {
	return s.outfitRepo.ListByUser(ctx, userID)
}

// ListMine is the stylist view: only outfits the stylist authored.
func (s *outfitService) ListMine(ctx context.Context, caller auth.Identity) ([]model.Outfit, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}
	return s.outfitRepo.ListByAuthor(ctx, caller.UserID)
}

// checkItems verifies every id resolves to an ACTIVE item owned by userID.
// One count comparison catches stale, foreign, inactive and duplicated ids.
func (s *outfitService) checkItems(ctx context.Context, userID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	count, err := s.itemRepo.CountOwnedActive(ctx, userID, itemIDs)
	if err != nil {
		return fmt.Errorf("check items: %w", err)
	}
	if count != int64(len(itemIDs)) {
		return errors.NewValidation("all items must be active items owned by the outfit's user")
	}
	return nil
}

// fetchAuthored loads an outfit and runs the author guard, plus the
// assignment guard for stylist authors so a reassigned user's old stylist
// loses write access.
func (s *outfitService) fetchAuthored(ctx context.Context, caller auth.Identity, outfitID uint) (*model.Outfit, error) {
	outfit, err := s.outfitRepo.FindByID(ctx, outfitID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFoundOrForbidden
		}
		return nil, fmt.Errorf("fetch outfit: %w", err)
	}
	if err := authz.RequireRecordAuthor(caller.UserID, outfit.CreatedByID); err != nil {
		return nil, err
	}
	if caller.Role == model.RoleStylist && outfit.UserID != caller.UserID {
		if _, err := s.authorizer.RequireAssignedUser(ctx, caller.UserID, outfit.UserID); err != nil {
			return nil, err
		}
	}
	return outfit, nil
}
