package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/errors"
	"closet/internal/model"
	"closet/internal/repository"
)

func newItemService(itemRepo *MockClothingItemRepository, userRepo *MockUserRepository) ClothingItemService {
	return NewClothingItemService(itemRepo, authz.New(userRepo))
}

func TestClothingItemService_Create(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateItemInput
		wantValidation bool
	}{
		{
			name:  "valid item",
			input: CreateItemInput{ImageURL: "/uploads/abc.jpg", Category: model.CategoryTops, Color: "white"},
		},
		{
			name:           "unknown category",
			input:          CreateItemInput{ImageURL: "/uploads/abc.jpg", Category: "HATS", Color: "white"},
			wantValidation: true,
		},
		{
			name:           "missing color",
			input:          CreateItemInput{ImageURL: "/uploads/abc.jpg", Category: model.CategoryTops},
			wantValidation: true,
		},
		{
			name:           "unusable image url",
			input:          CreateItemInput{ImageURL: "://", Category: model.CategoryTops, Color: "white"},
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItemRepo := new(MockClothingItemRepository)
			if !tt.wantValidation {
				mockItemRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ClothingItem")).Return(nil)
			}

			service := newItemService(mockItemRepo, new(MockUserRepository))
			item, err := service.Create(context.Background(), 1, tt.input)

			if tt.wantValidation {
				var ve *errors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(1), item.UserID)
				assert.Equal(t, model.ItemStatusActive, item.Status)
			}
			mockItemRepo.AssertExpectations(t)
		})
	}
}

func TestClothingItemService_List_DefaultsToActive(t *testing.T) {
	mockItemRepo := new(MockClothingItemRepository)
	mockItemRepo.On("ListByUser", mock.Anything, uint(1), repository.ItemFilter{Status: model.ItemStatusActive}).
		Return([]model.ClothingItem{{ID: 10, Status: model.ItemStatusActive}}, nil)

	service := newItemService(mockItemRepo, new(MockUserRepository))
	items, err := service.List(context.Background(), 1, nil, nil)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	mockItemRepo.AssertExpectations(t)
}

func TestClothingItemService_List_ExplicitStatus(t *testing.T) {
	disposed := model.ItemStatusDisposed
	mockItemRepo := new(MockClothingItemRepository)
	mockItemRepo.On("ListByUser", mock.Anything, uint(1), repository.ItemFilter{Status: disposed}).
		Return([]model.ClothingItem{}, nil)

	service := newItemService(mockItemRepo, new(MockUserRepository))
	_, err := service.List(context.Background(), 1, nil, &disposed)

	assert.NoError(t, err)
	mockItemRepo.AssertExpectations(t)
}

func TestClothingItemService_Get_OwnershipConflatesWithMissing(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockClothingItemRepository)
	}{
		{
			name: "item does not exist",
			setupMock: func(m *MockClothingItemRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
		},
		{
			name: "item owned by someone else",
			setupMock: func(m *MockClothingItemRepository) {
				m.On("FindByID", mock.Anything, uint(99)).
					Return(&model.ClothingItem{ID: 99, UserID: 2}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItemRepo := new(MockClothingItemRepository)
			tt.setupMock(mockItemRepo)

			service := newItemService(mockItemRepo, new(MockUserRepository))
			item, err := service.Get(context.Background(), 1, 99)

			// Both cases must be indistinguishable to the caller.
			assert.ErrorIs(t, err, errors.ErrNotFoundOrForbidden)
			assert.Nil(t, item)
			mockItemRepo.AssertExpectations(t)
		})
	}
}

func TestClothingItemService_Transition(t *testing.T) {
	tests := []struct {
		name       string
		from       model.ItemStatus
		action     model.ItemAction
		wantStatus model.ItemStatus
		wantError  bool
	}{
		{name: "active marked unnecessary", from: model.ItemStatusActive, action: model.ActionMarkUnnecessary, wantStatus: model.ItemStatusInactive},
		{name: "active deleted", from: model.ItemStatusActive, action: model.ActionDelete, wantStatus: model.ItemStatusDisposed},
		{name: "active cannot become roomwear directly", from: model.ItemStatusActive, action: model.ActionMarkRoomwear, wantError: true},
		{name: "active cannot be re-activated", from: model.ItemStatusActive, action: model.ActionMarkActive, wantError: true},
		{name: "inactive reactivated", from: model.ItemStatusInactive, action: model.ActionMarkActive, wantStatus: model.ItemStatusActive},
		{name: "inactive becomes roomwear", from: model.ItemStatusInactive, action: model.ActionMarkRoomwear, wantStatus: model.ItemStatusRoomwear},
		{name: "inactive deleted", from: model.ItemStatusInactive, action: model.ActionDelete, wantStatus: model.ItemStatusDisposed},
		{name: "roomwear reactivated", from: model.ItemStatusRoomwear, action: model.ActionMarkActive, wantStatus: model.ItemStatusActive},
		{name: "roomwear cannot be deleted", from: model.ItemStatusRoomwear, action: model.ActionDelete, wantError: true},
		{name: "roomwear cannot be marked unnecessary", from: model.ItemStatusRoomwear, action: model.ActionMarkUnnecessary, wantError: true},
		{name: "disposed is terminal for reactivation", from: model.ItemStatusDisposed, action: model.ActionMarkActive, wantError: true},
		{name: "disposed is terminal for deletion", from: model.ItemStatusDisposed, action: model.ActionDelete, wantError: true},
		{name: "unknown action", from: model.ItemStatusActive, action: "incinerate", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItemRepo := new(MockClothingItemRepository)
			if _, known := tt.action.TargetStatus(); known {
				mockItemRepo.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1, Status: tt.from}, nil)
			}
			if !tt.wantError {
				mockItemRepo.On("UpdateStatus", mock.Anything, uint(10), tt.wantStatus).Return(nil)
			}

			service := newItemService(mockItemRepo, new(MockUserRepository))
			item, err := service.Transition(context.Background(), 1, 10, tt.action)

			if tt.wantError {
				var ve *errors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, item.Status)
			}
			mockItemRepo.AssertExpectations(t)
		})
	}
}

func TestClothingItemService_ListForStylist(t *testing.T) {
	stylist := auth.Identity{UserID: 7, Role: model.RoleStylist}

	tests := []struct {
		name          string
		caller        auth.Identity
		setupMock     func(*MockClothingItemRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name:   "stylist lists an assigned user's items",
			caller: stylist,
			setupMock: func(mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(1)).Return(assignedUser(1, 7), nil)
				mItem.On("ListByUser", mock.Anything, uint(1), repository.ItemFilter{Status: model.ItemStatusActive}).
					Return([]model.ClothingItem{{ID: 10}}, nil)
			},
		},
		{
			name:          "regular user is refused",
			caller:        auth.Identity{UserID: 2, Role: model.RoleUser},
			setupMock:     func(mItem *MockClothingItemRepository, mUser *MockUserRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:   "user assigned to another stylist reads as missing",
			caller: stylist,
			setupMock: func(mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(1)).Return(assignedUser(1, 8), nil)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockItemRepo := new(MockClothingItemRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockItemRepo, mockUserRepo)

			service := newItemService(mockItemRepo, mockUserRepo)
			items, err := service.ListForStylist(context.Background(), tt.caller, 1, nil)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, items)
			} else {
				assert.NoError(t, err)
				assert.Len(t, items, 1)
			}
			mockItemRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}
