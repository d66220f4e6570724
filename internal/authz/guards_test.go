package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"closet/internal/errors"
	"closet/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
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

func TestRequireRole(t *testing.T) {
	assert.NoError(t, RequireRole(model.RoleStylist, model.RoleStylist))
	assert.ErrorIs(t, RequireRole(model.RoleUser, model.RoleStylist), errors.ErrForbidden)
	assert.ErrorIs(t, RequireRole(model.RoleStylist, model.RoleUser), errors.ErrForbidden)
}

func TestRequireOwner(t *testing.T) {
	assert.NoError(t, RequireOwner(1, 1))
	// Not-owned must read exactly like missing.
	assert.ErrorIs(t, RequireOwner(1, 2), errors.ErrNotFoundOrForbidden)
}

func TestRequireRecordAuthor(t *testing.T) {
	assert.NoError(t, RequireRecordAuthor(7, 7))
	assert.ErrorIs(t, RequireRecordAuthor(7, 8), errors.ErrNotFoundOrForbidden)
}

func TestAuthorizer_RequireAssignedUser(t *testing.T) {
	stylistID := uint(7)
	otherStylistID := uint(8)

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "assigned user passes",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:                1,
					Role:              model.RoleUser,
					AssignedStylistID: &stylistID,
				}, nil)
			},
		},
		{
			name: "missing user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
		{
			name: "target is a stylist, not a user",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:   1,
					Role: model.RoleStylist,
				}, nil)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
		{
			name: "user has no stylist",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:   1,
					Role: model.RoleUser,
				}, nil)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
		{
			name: "user assigned to another stylist",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:                1,
					Role:              model.RoleUser,
					AssignedStylistID: &otherStylistID,
				}, nil)
			},
			expectedError: errors.ErrNotFoundOrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			authorizer := New(mockRepo)
			user, err := authorizer.RequireAssignedUser(context.Background(), stylistID, 1)

			if tt.expectedError != nil {
				// Every denial is the same generic not-found.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(1), user.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
