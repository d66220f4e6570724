package repository

import (
	"context"

	"gorm.io/gorm"

	"closet/internal/model"
)

// ItemFilter narrows a clothing item listing. A nil Category means all
// categories; Status always applies (callers default it to ACTIVE).
type ItemFilter struct {
	Category *model.ItemCategory
	Status   model.ItemStatus
}

// ClothingItemRepository defines clothing item persistence operations.
type ClothingItemRepository interface {
	Create(ctx context.Context, item *model.ClothingItem) error
	FindByID(ctx context.Context, id uint) (*model.ClothingItem, error)
	ListByUser(ctx context.Context, userID uint, filter ItemFilter) ([]model.ClothingItem, error)
	UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) error
	CountOwnedActive(ctx context.Context, userID uint, ids []uint) (int64, error)
	CountActiveWithoutEvaluation(ctx context.Context, userID, stylistID uint) (int64, error)
}

type clothingItemRepository struct {
	db *gorm.DB
}

// NewClothingItemRepository builds a GORM-backed repository.
func NewClothingItemRepository(db *gorm.DB) ClothingItemRepository {
	return &clothingItemRepository{db: db}
}

func (r *clothingItemRepository) Create(ctx context.Context, item *model.ClothingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *clothingItemRepository) FindByID(ctx context.Context, id uint) (*model.ClothingItem, error) {
	var item model.ClothingItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *clothingItemRepository) ListByUser(ctx context.Context, userID uint, filter ItemFilter) ([]model.ClothingItem, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, filter.Status)
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}

	var items []model.ClothingItem
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *clothingItemRepository) UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) error {
	return r.db.WithContext(ctx).Model(&model.ClothingItem{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountOwnedActive counts how many of ids are ACTIVE items owned by userID.
// Outfit creation compares the result against len(ids) to catch stale,
// foreign, and inactive ids in one check.
func (r *clothingItemRepository) CountOwnedActive(ctx context.Context, userID uint, ids []uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ClothingItem{}).
		Where("id IN ? AND user_id = ? AND status = ?", ids, userID, model.ItemStatusActive).
		Count(&count).Error
	return count, err
}

// CountActiveWithoutEvaluation counts the user's ACTIVE items that the given
// stylist has not evaluated yet. Feeds the dashboard priority score.
func (r *clothingItemRepository) CountActiveWithoutEvaluation(ctx context.Context, userID, stylistID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ClothingItem{}).
		Where("user_id = ? AND status = ?", userID, model.ItemStatusActive).
		Where("id NOT IN (?)", r.db.Model(&model.ItemEvaluation{}).
			Select("item_id").
			Where("stylist_id = ?", stylistID)).
		Count(&count).Error
	return count, err
}
