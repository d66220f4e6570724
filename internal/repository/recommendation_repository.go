package repository

import (
	"context"

	"gorm.io/gorm"

	"closet/internal/model"
)

// RecommendationRepository defines purchase recommendation persistence operations.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *model.PurchaseRecommendation) error
	FindByID(ctx context.Context, id uint) (*model.PurchaseRecommendation, error)
	Save(ctx context.Context, rec *model.PurchaseRecommendation) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]model.PurchaseRecommendation, error)
	ListByStylist(ctx context.Context, stylistID uint) ([]model.PurchaseRecommendation, error)
	CountPendingByUser(ctx context.Context, userID uint) (int64, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository builds a GORM-backed repository.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *model.PurchaseRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) FindByID(ctx context.Context, id uint) (*model.PurchaseRecommendation, error) {
	var rec model.PurchaseRecommendation
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) Save(ctx context.Context, rec *model.PurchaseRecommendation) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recommendationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PurchaseRecommendation{}, id).Error
}

func (r *recommendationRepository) ListByUser(ctx context.Context, userID uint) ([]model.PurchaseRecommendation, error) {
	var recs []model.PurchaseRecommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) ListByStylist(ctx context.Context, stylistID uint) ([]model.PurchaseRecommendation, error) {
	var recs []model.PurchaseRecommendation
	err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) CountPendingByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseRecommendation{}).
		Where("user_id = ? AND status = ?", userID, model.RecommendationPending).
		Count(&count).Error
	return count, err
}
