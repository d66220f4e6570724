package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"closet/internal/model"
	"closet/internal/repository"
)

// unknownFieldValue marks string fields the client saved as "not decided".
const unknownFieldValue = "UNKNOWN"

// ProfileView is a profile plus its completion summary. Completion weighs
// ten fields at 10% each; MissingFields lists the labels still unset.
type ProfileView struct {
	Profile       model.UserProfile `json:"profile"`
	Completion    int               `json:"completion"`
	MissingFields []string          `json:"missing_fields"`
}

// UpdateProfileInput carries the full profile form; every optional field is
// replaced on save.
type UpdateProfileInput struct {
	Height          *int
	Weight          *int
	Age             *int
	BodyType        *string
	PersonalColor   *string
	ProfileImageURL *string
	StylePreference *string
	Concerns        *string
	Goals           *string
	Budget          *decimal.Decimal
	Lifestyle       *string
	IsPublic        *bool
}

// ProfileService reads and saves the caller's own profile. Always
// self-scoped: routes bind to the session identity, so no cross-user guard
// is needed here.
type ProfileService interface {
	Get(ctx context.Context, userID uint) (*ProfileView, error)
	Upsert(ctx context.Context, userID uint, input UpdateProfileInput) (*ProfileView, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// Get returns the profile with completion. A user whose lenient
// registration lost the profile row gets an empty, unsaved profile back.
func (s *profileService) Get(ctx context.Context, userID uint) (*ProfileView, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			profile = &model.UserProfile{UserID: userID}
		} else {
			return nil, fmt.Errorf("fetch profile: %w", err)
		}
	}
	return buildProfileView(profile), nil
}

// Upsert saves the full profile form, creating the row if registration's
// lenient insert never landed.
func (s *profileService) Upsert(ctx context.Context, userID uint, input UpdateProfileInput) (*ProfileView, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	created := false
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("fetch profile: %w", err)
		}
		profile = &model.UserProfile{UserID: userID}
		created = true
	}

	profile.Height = input.Height
	profile.Weight = input.Weight
	profile.Age = input.Age
	profile.BodyType = input.BodyType
	profile.PersonalColor = input.PersonalColor
	profile.ProfileImageURL = input.ProfileImageURL
	profile.StylePreference = input.StylePreference
	profile.Concerns = input.Concerns
	profile.Goals = input.Goals
	profile.Budget = input.Budget
	profile.Lifestyle = input.Lifestyle
	if input.IsPublic != nil {
		profile.IsPublic = *input.IsPublic
	}

	if created {
		err = s.profileRepo.Create(ctx, profile)
	} else {
		err = s.profileRepo.Save(ctx, profile)
	}
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return buildProfileView(profile), nil
}

func buildProfileView(profile *model.UserProfile) *ProfileView {
	completion, missing := ProfileCompletion(profile)
	return &ProfileView{Profile: *profile, Completion: completion, MissingFields: missing}
}

// ProfileCompletion computes the completion percentage over the fixed
// ten-field list and names the missing fields. A string field counts as
// missing when nil, empty or "UNKNOWN"; numeric fields when nil.
func ProfileCompletion(profile *model.UserProfile) (int, []string) {
	fields := []struct {
		label string
		set   bool
	}{
		{"height", profile.Height != nil},
		{"weight", profile.Weight != nil},
		{"age", profile.Age != nil},
		{"body_type", stringFieldSet(profile.BodyType)},
		{"personal_color", stringFieldSet(profile.PersonalColor)},
		{"style_preference", stringFieldSet(profile.StylePreference)},
		{"concerns", stringFieldSet(profile.Concerns)},
		{"goals", stringFieldSet(profile.Goals)},
		{"budget", profile.Budget != nil},
		{"lifestyle", stringFieldSet(profile.Lifestyle)},
	}

	completion := 0
	missing := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.set {
			completion += 10
		} else {
			missing = append(missing, f.label)
		}
	}
	return completion, missing
}

func stringFieldSet(v *string) bool {
	return v != nil && *v != "" && *v != unknownFieldValue
}
