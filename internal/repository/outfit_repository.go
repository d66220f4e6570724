package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"closet/internal/model"
)

// OutfitRepository defines outfit persistence operations. Multi-row writes
// (outfit + join rows) run in a single transaction; an outfit row without
// its item associations must never be observable.
type OutfitRepository interface {
	CreateWithItems(ctx context.Context, outfit *model.Outfit, itemIDs []uint) error
	UpdateWithItems(ctx context.Context, outfit *model.Outfit, itemIDs []uint) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Outfit, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Outfit, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]model.Outfit, error)
	LatestCreatedAtForUser(ctx context.Context, userID uint) (*time.Time, error)
}

type outfitRepository struct {
	db *gorm.DB
}

// NewOutfitRepository builds a GORM-backed repository.
func NewOutfitRepository(db *gorm.DB) OutfitRepository {
	return &outfitRepository{db: db}
}

func (r *outfitRepository) CreateWithItems(ctx context.Context, outfit *model.Outfit, itemIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "CreatedBy").Create(outfit).Error; err != nil {
			return err
		}
		return createJoinRows(tx, outfit.ID, itemIDs)
	})
}

// UpdateWithItems saves the outfit row and replaces its item set atomically.
func (r *outfitRepository) UpdateWithItems(ctx context.Context, outfit *model.Outfit, itemIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "CreatedBy").Save(outfit).Error; err != nil {
			return err
		}
		if err := tx.Where("outfit_id = ?", outfit.ID).
			Delete(&model.OutfitClothingItem{}).Error; err != nil {
			return err
		}
		return createJoinRows(tx, outfit.ID, itemIDs)
	})
}

func createJoinRows(tx *gorm.DB, outfitID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	joins := make([]model.OutfitClothingItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		joins = append(joins, model.OutfitClothingItem{OutfitID: outfitID, ClothingItemID: itemID})
	}
	return tx.Create(&joins).Error
}

func (r *outfitRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("outfit_id = ?", id).
			Delete(&model.OutfitClothingItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Outfit{}, id).Error
	})
}

func (r *outfitRepository) FindByID(ctx context.Context, id uint) (*model.Outfit, error) {
	var outfit model.Outfit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("CreatedBy").
		First(&outfit, id).Error
	if err != nil {
		return nil, err
	}
	return &outfit, nil
}

func (r *outfitRepository) ListByUser(ctx context.Context, userID uint) ([]model.Outfit, error) {
	var outfits []model.Outfit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("CreatedBy").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&outfits).Error
	if err != nil {
		return nil, err
	}
	return outfits, nil
}

func (r *outfitRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Outfit, error) {
	var outfits []model.Outfit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("CreatedBy").
		Where("created_by_id = ?", authorID).
		Order("created_at DESC").
		Find(&outfits).Error
	if err != nil {
		return nil, err
	}
	return outfits, nil
}

// LatestCreatedAtForUser returns when the user's newest outfit was created,
// or nil if they have none. Feeds the dashboard priority score.
func (r *outfitRepository) LatestCreatedAtForUser(ctx context.Context, userID uint) (*time.Time, error) {
	var outfit model.Outfit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&outfit).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &outfit.CreatedAt, nil
}
