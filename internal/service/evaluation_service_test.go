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
)

func newEvaluationService(evalRepo *MockEvaluationRepository, itemRepo *MockClothingItemRepository, userRepo *MockUserRepository) EvaluationService {
	return NewEvaluationService(evalRepo, itemRepo, authz.New(userRepo))
}

func TestEvaluationService_Upsert(t *testing.T) {
	stylist := auth.Identity{UserID: 7, Role: model.RoleStylist}

	tests := []struct {
		name           string
		caller         auth.Identity
		verdict        model.EvaluationVerdict
		setupMock      func(*MockEvaluationRepository, *MockClothingItemRepository, *MockUserRepository)
		expectedError  error
		wantValidation bool
	}{
		{
			name:    "first verdict on an assigned user's item",
			caller:  stylist,
			verdict: model.VerdictNecessary,
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1, Status: model.ItemStatusActive}, nil)
				mUser.On("FindByID", mock.Anything, uint(1)).Return(assignedUser(1, 7), nil)
				mEval.On("Upsert", mock.Anything, mock.AnythingOfType("*model.ItemEvaluation")).Return(nil)
				mEval.On("FindByItemAndStylist", mock.Anything, uint(10), uint(7)).
					Return(&model.ItemEvaluation{ID: 5, ItemID: 10, StylistID: 7, Evaluation: model.VerdictNecessary}, nil)
			},
		},
		{
			name:    "second verdict overwrites, never duplicates",
			caller:  stylist,
			verdict: model.VerdictUnnecessary,
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1, Status: model.ItemStatusActive}, nil)
				mUser.On("FindByID", mock.Anything, uint(1)).Return(assignedUser(1, 7), nil)
				mEval.On("Upsert", mock.Anything, mock.AnythingOfType("*model.ItemEvaluation")).Return(nil)
				// The surviving row keeps its original ID.
				mEval.On("FindByItemAndStylist", mock.Anything, uint(10), uint(7)).
					Return(&model.ItemEvaluation{ID: 5, ItemID: 10, StylistID: 7, Evaluation: model.VerdictUnnecessary}, nil)
			},
		},
		{
			name:          "regular user cannot evaluate",
			caller:        auth.Identity{UserID: 1, Role: model.RoleUser},
			verdict:       model.VerdictKeep,
			setupMock:     func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:           "unknown verdict",
			caller:         stylist,
			verdict:        "MAYBE",
			setupMock:      func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {},
			wantValidation: true,
		},
		{
			name:    "item does not exist",
			caller:  stylist,
			verdict: model.VerdictKeep,
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
		{
			name:    "item owner assigned to another stylist",
			caller:  stylist,
			verdict: model.VerdictKeep,
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1}, nil)
				mUser.On("FindByID", mock.Anything, uint(1)).Return(assignedUser(1, 8), nil)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEvalRepo := new(MockEvaluationRepository)
			mockItemRepo := new(MockClothingItemRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockEvalRepo, mockItemRepo, mockUserRepo)

			service := newEvaluationService(mockEvalRepo, mockItemRepo, mockUserRepo)
			eval, err := service.Upsert(context.Background(), tt.caller, 10, tt.verdict, "a comment")

			switch {
			case tt.wantValidation:
				var ve *errors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, eval)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, eval)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.verdict, eval.Evaluation)
				assert.Equal(t, uint(7), eval.StylistID)
			}

			mockEvalRepo.AssertExpectations(t)
			mockItemRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestEvaluationService_ListForItem(t *testing.T) {
	tests := []struct {
		name          string
		caller        auth.Identity
		setupMock     func(*MockEvaluationRepository, *MockClothingItemRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name:   "owner reads their item's evaluations",
			caller: auth.Identity{UserID: 1, Role: model.RoleUser},
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1}, nil)
				mEval.On("ListByItem", mock.Anything, uint(10)).
					Return([]model.ItemEvaluation{{ID: 5, ItemID: 10}}, nil)
			},
		},
		{
			name:   "assigned stylist reads them too",
			caller: auth.Identity{UserID: 7, Role: model.RoleStylist},
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1}, nil)
				mUser.On("FindByID", mock.Anything, uint(1)).Return(assignedUser(1, 7), nil)
				mEval.On("ListByItem", mock.Anything, uint(10)).
					Return([]model.ItemEvaluation{{ID: 5, ItemID: 10}}, nil)
			},
		},
		{
			name:   "another user sees the generic not-found",
			caller: auth.Identity{UserID: 2, Role: model.RoleUser},
			setupMock: func(mEval *MockEvaluationRepository, mItem *MockClothingItemRepository, mUser *MockUserRepository) {
				mItem.On("FindByID", mock.Anything, uint(10)).
					Return(&model.ClothingItem{ID: 10, UserID: 1}, nil)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEvalRepo := new(MockEvaluationRepository)
			mockItemRepo := new(MockClothingItemRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockEvalRepo, mockItemRepo, mockUserRepo)

			service := newEvaluationService(mockEvalRepo, mockItemRepo, mockUserRepo)
			evals, err := service.ListForItem(context.Background(), tt.caller, 10)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, evals)
			} else {
				assert.NoError(t, err)
				assert.Len(t, evals, 1)
			}
			mockEvalRepo.AssertExpectations(t)
			mockItemRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}
