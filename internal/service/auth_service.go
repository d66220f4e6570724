package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"closet/internal/auth"
	"closet/internal/errors"
	"closet/internal/model"
	"closet/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string, role model.Role, stylistID *uint) (*model.User, error)
	Login(ctx context.Context, email, password string) (sessionToken, refreshToken string, user *model.User, err error)
	Refresh(ctx context.Context, refreshToken string) (sessionToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
	}
}

// Register creates a user with a hashed password. When stylistID is given
// it must reference an existing STYLIST. The empty profile row is created
// leniently: a failure there logs a warning and registration still succeeds,
// since the profile is recreated on first save.
func (s *authService) Register(ctx context.Context, email, password, name string, role model.Role, stylistID *uint) (*model.User, error) {
	if !role.Valid() {
		return nil, errors.NewValidation("role must be USER or STYLIST")
	}
	if role == model.RoleStylist && stylistID != nil {
		return nil, errors.NewValidation("a stylist cannot be assigned to another stylist")
	}

	if stylistID != nil {
		stylist, err := s.userRepo.FindByID(ctx, *stylistID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.NewValidation("assigned stylist not found")
			}
			return nil, fmt.Errorf("check stylist existence: %w", err)
		}
		if stylist.Role != model.RoleStylist {
			return nil, errors.NewValidation("assigned stylist not found")
		}
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrDuplicateEmail
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:             email,
		PasswordHash:      string(hashedPassword),
		Name:              name,
		Role:              role,
		AssignedStylistID: stylistID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Non-critical: the user row is the registration contract.
	if err := s.profileRepo.Create(ctx, &model.UserProfile{UserID: user.ID}); err != nil {
		log.Printf("warning: create profile for user %d: %v", user.ID, err)
	}

	return user, nil
}

// Login authenticates a user and returns session and refresh tokens. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (sessionToken, refreshToken string, user *model.User, err error) {
	user, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, errors.ErrInvalidCredentials
	}

	sessionToken, err = s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate session token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return sessionToken, refreshToken, user, nil
}

// Refresh validates a refresh token and issues a new session token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}
	if storedUserID != claims.UserID || storedEmail != claims.Email {
		return "", errors.ErrInvalidRefreshToken
	}

	// Re-read the user so a role or name change lands in the new token.
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", errors.ErrInvalidRefreshToken
	}

	sessionToken, err := s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return sessionToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return errors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
