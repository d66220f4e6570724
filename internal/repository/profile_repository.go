package repository

import (
	"context"

	"gorm.io/gorm"

	"closet/internal/model"
)

// ProfileRepository defines user profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	FindByUserID(ctx context.Context, userID uint) (*model.UserProfile, error)
	Save(ctx context.Context, profile *model.UserProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
