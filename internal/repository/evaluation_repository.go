package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"closet/internal/model"
)

// EvaluationRepository defines item evaluation persistence operations.
type EvaluationRepository interface {
	Upsert(ctx context.Context, eval *model.ItemEvaluation) error
	FindByItemAndStylist(ctx context.Context, itemID, stylistID uint) (*model.ItemEvaluation, error)
	ListByItem(ctx context.Context, itemID uint) ([]model.ItemEvaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository builds a GORM-backed repository.
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

// Upsert inserts the evaluation or, on the (item_id, stylist_id) unique
// index, overwrites the previous verdict and comment. Atomic at the storage
// layer, so concurrent submissions from the same stylist cannot produce a
// second row.
func (r *evaluationRepository) Upsert(ctx context.Context, eval *model.ItemEvaluation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "stylist_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"evaluation", "comment", "updated_at"}),
	}).Create(eval).Error
}

func (r *evaluationRepository) FindByItemAndStylist(ctx context.Context, itemID, stylistID uint) (*model.ItemEvaluation, error) {
	var eval model.ItemEvaluation
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND stylist_id = ?", itemID, stylistID).
		First(&eval).Error
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

func (r *evaluationRepository) ListByItem(ctx context.Context, itemID uint) ([]model.ItemEvaluation, error) {
	var evals []model.ItemEvaluation
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}
