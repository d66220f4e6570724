package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"closet/internal/auth"
	"closet/internal/errors"
	"closet/internal/model"
)

func TestDashboardService_RoleGate(t *testing.T) {
	service := NewDashboardService(new(MockUserRepository), new(MockClothingItemRepository), new(MockOutfitRepository), new(MockRecommendationRepository), nil)

	_, err := service.Dashboard(context.Background(), auth.Identity{UserID: 1, Role: model.RoleUser})
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func TestDashboardService_PriorityOrdering(t *testing.T) {
	stylistID := uint(7)
	recent := time.Now().Add(-24 * time.Hour)
	stale := time.Now().Add(-45 * 24 * time.Hour)
	fullProfile := &model.UserProfile{
		Height:          intPtr(170),
		Weight:          intPtr(60),
		Age:             intPtr(30),
		BodyType:        strPtr("straight"),
		PersonalColor:   strPtr("spring"),
		StylePreference: strPtr("casual"),
		Concerns:        strPtr("colors"),
		Goals:           strPtr("capsule"),
		Lifestyle:       strPtr("office"),
	}

	mockUserRepo := new(MockUserRepository)
	mockItemRepo := new(MockClothingItemRepository)
	mockOutfitRepo := new(MockOutfitRepository)
	mockRecRepo := new(MockRecommendationRepository)

	// User 1: well served. One unevaluated item, fresh outfit, 90% profile.
	// Score 3*1 = 3.
	// User 2: neglected. Five unevaluated items, stale outfit, empty profile.
	// Score 3*5 + 10 + 5 = 30.
	// User 3: brand new. No items yet, never had an outfit, empty profile.
	// Score 10 + 5 = 15.
	mockUserRepo.On("ListByAssignedStylist", mock.Anything, stylistID).Return([]model.User{
		{ID: 1, Name: "Served", Role: model.RoleUser, AssignedStylistID: &stylistID, Profile: fullProfile},
		{ID: 2, Name: "Neglected", Role: model.RoleUser, AssignedStylistID: &stylistID},
		{ID: 3, Name: "New", Role: model.RoleUser, AssignedStylistID: &stylistID},
	}, nil)

	mockItemRepo.On("CountActiveWithoutEvaluation", mock.Anything, uint(1), stylistID).Return(int64(1), nil)
	mockItemRepo.On("CountActiveWithoutEvaluation", mock.Anything, uint(2), stylistID).Return(int64(5), nil)
	mockItemRepo.On("CountActiveWithoutEvaluation", mock.Anything, uint(3), stylistID).Return(int64(0), nil)

	mockOutfitRepo.On("LatestCreatedAtForUser", mock.Anything, uint(1)).Return(&recent, nil)
	mockOutfitRepo.On("LatestCreatedAtForUser", mock.Anything, uint(2)).Return(&stale, nil)
	mockOutfitRepo.On("LatestCreatedAtForUser", mock.Anything, uint(3)).Return(nil, nil)

	mockRecRepo.On("CountPendingByUser", mock.Anything, mock.Anything).Return(int64(0), nil)

	service := NewDashboardService(mockUserRepo, mockItemRepo, mockOutfitRepo, mockRecRepo, nil)
	entries, err := service.Dashboard(context.Background(), auth.Identity{UserID: stylistID, Role: model.RoleStylist})

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "Neglected", entries[0].User.Name)
	assert.Equal(t, 30, entries[0].PriorityScore)
	assert.Equal(t, "New", entries[1].User.Name)
	assert.Equal(t, 15, entries[1].PriorityScore)
	assert.Equal(t, "Served", entries[2].User.Name)
	assert.Equal(t, 3, entries[2].PriorityScore)

	mockUserRepo.AssertExpectations(t)
	mockItemRepo.AssertExpectations(t)
	mockOutfitRepo.AssertExpectations(t)
}

func TestDashboardService_TieBreakFavorsLongestUntouched(t *testing.T) {
	stylistID := uint(7)
	older := time.Now().Add(-60 * 24 * time.Hour)
	newer := time.Now().Add(-40 * 24 * time.Hour)

	mockUserRepo := new(MockUserRepository)
	mockItemRepo := new(MockClothingItemRepository)
	mockOutfitRepo := new(MockOutfitRepository)
	mockRecRepo := new(MockRecommendationRepository)

	// Identical scores; ordering must fall back to outfit age, with
	// "never" sorting before any date.
	mockUserRepo.On("ListByAssignedStylist", mock.Anything, stylistID).Return([]model.User{
		{ID: 1, Name: "Newer", Role: model.RoleUser, AssignedStylistID: &stylistID},
		{ID: 2, Name: "Older", Role: model.RoleUser, AssignedStylistID: &stylistID},
		{ID: 3, Name: "Never", Role: model.RoleUser, AssignedStylistID: &stylistID},
	}, nil)

	mockItemRepo.On("CountActiveWithoutEvaluation", mock.Anything, mock.Anything, stylistID).Return(int64(0), nil)
	mockOutfitRepo.On("LatestCreatedAtForUser", mock.Anything, uint(1)).Return(&newer, nil)
	mockOutfitRepo.On("LatestCreatedAtForUser", mock.Anything, uint(2)).Return(&older, nil)
	mockOutfitRepo.On("LatestCreatedAtForUser", mock.Anything, uint(3)).Return(nil, nil)
	mockRecRepo.On("CountPendingByUser", mock.Anything, mock.Anything).Return(int64(0), nil)

	service := NewDashboardService(mockUserRepo, mockItemRepo, mockOutfitRepo, mockRecRepo, nil)
	entries, err := service.Dashboard(context.Background(), auth.Identity{UserID: stylistID, Role: model.RoleStylist})

	assert.NoError(t, err)
	assert.Equal(t, "Never", entries[0].User.Name)
	assert.Equal(t, "Older", entries[1].User.Name)
	assert.Equal(t, "Newer", entries[2].User.Name)
}
