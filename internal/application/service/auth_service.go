package service

import (
	"context"

	"github.com/sangkips/pharmacy-api/internal/domain/entity"
	"github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/pkg/apperror"
	"github.com/sangkips/pharmacy-api/pkg/utils"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  repository.AdminRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repository.AdminRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
	}
}

// RegisterInput represents the admin registration input
type RegisterInput struct {
	Email    string
	Phone    string
	Password string
}

// Register creates a new admin account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.Admin, error) {
	existing, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An admin with this email already exists")
	}

	admin := &entity.Admin{
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := admin.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// TokenPair holds an access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates an admin and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.CheckPassword(password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(admin)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	adminID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(admin)
}

// GetProfile returns the admin for the given id
func (s *AuthService) GetProfile(ctx context.Context, adminID uint) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.NewNotFoundError("Admin")
	}
	return admin, nil
}

func (s *AuthService) issueTokens(admin *entity.Admin) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(admin.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
