package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"closet/internal/model"
	"closet/internal/repository"
)

// Shared mock repositories for the service tests in this package.

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByAssignedStylist(ctx context.Context, stylistID uint) ([]model.User, error) {
	args := m.Called(ctx, stylistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockClothingItemRepository is a mock implementation of ClothingItemRepository.
type MockClothingItemRepository struct {
	mock.Mock
}

func (m *MockClothingItemRepository) Create(ctx context.Context, item *model.ClothingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockClothingItemRepository) FindByID(ctx context.Context, id uint) (*model.ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) ListByUser(ctx context.Context, userID uint, filter repository.ItemFilter) ([]model.ClothingItem, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClothingItem), args.Error(1)
}

func (m *MockClothingItemRepository) UpdateStatus(ctx context.Context, id uint, status model.ItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockClothingItemRepository) CountOwnedActive(ctx context.Context, userID uint, ids []uint) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClothingItemRepository) CountActiveWithoutEvaluation(ctx context.Context, userID, stylistID uint) (int64, error) {
	args := m.Called(ctx, userID, stylistID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEvaluationRepository is a mock implementation of EvaluationRepository.
type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) Upsert(ctx context.Context, eval *model.ItemEvaluation) error {
	args := m.Called(ctx, eval)
	return args.Error(0)
}

func (m *MockEvaluationRepository) FindByItemAndStylist(ctx context.Context, itemID, stylistID uint) (*model.ItemEvaluation, error) {
	args := m.Called(ctx, itemID, stylistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ItemEvaluation), args.Error(1)
}

func (m *MockEvaluationRepository) ListByItem(ctx context.Context, itemID uint) ([]model.ItemEvaluation, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemEvaluation), args.Error(1)
}

// MockOutfitRepository is a mock implementation of OutfitRepository.
type MockOutfitRepository struct {
	mock.Mock
}

func (m *MockOutfitRepository) CreateWithItems(ctx context.Context, outfit *model.Outfit, itemIDs []uint) error {
	args := m.Called(ctx, outfit, itemIDs)
	return args.Error(0)
}

func (m *MockOutfitRepository) UpdateWithItems(ctx context.Context, outfit *model.Outfit, itemIDs []uint) error {
	args := m.Called(ctx, outfit, itemIDs)
	return args.Error(0)
}

func (m *MockOutfitRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOutfitRepository) FindByID(ctx context.Context, id uint) (*model.Outfit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) ListByUser(ctx context.Context, userID uint) ([]model.Outfit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Outfit, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Outfit), args.Error(1)
}

func (m *MockOutfitRepository) LatestCreatedAtForUser(ctx context.Context, userID uint) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// MockRecommendationRepository is a mock implementation of RecommendationRepository.
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *model.PurchaseRecommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) FindByID(ctx context.Context, id uint) (*model.PurchaseRecommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchaseRecommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Save(ctx context.Context, rec *model.PurchaseRecommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecommendationRepository) ListByUser(ctx context.Context, userID uint) ([]model.PurchaseRecommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PurchaseRecommendation), args.Error(1)
}

func (m *MockRecommendationRepository) ListByStylist(ctx context.Context, stylistID uint) ([]model.PurchaseRecommendation, error) {
	args := m.Called(ctx, stylistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PurchaseRecommendation), args.Error(1)
}

func (m *MockRecommendationRepository) CountPendingByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// assignedUser builds a USER assigned to the given stylist, the shape most
// guard paths expect.
func assignedUser(id, stylistID uint) *model.User {
	return &model.User{
		ID:                id,
		Email:             "user@example.com",
		Name:              "Test User",
		Role:              model.RoleUser,
		AssignedStylistID: &stylistID,
	}
}
