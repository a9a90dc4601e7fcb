package usecase

import (
	"context"
	"errors"
	"strings"

	"learnplatform/internal/domain"
	"learnplatform/internal/infrastructure/kvstore"
	"learnplatform/internal/infrastructure/repository"
	"learnplatform/internal/infrastructure/security"
	"learnplatform/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshKeyPrefix = "refresh_token:"

type AuthService struct {
	profiles     repository.ProfileRepo
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
	tokens       kvstore.Store
	log          *logger.Logger
}

func NewAuthService(
	profiles repository.ProfileRepo,
	hasher *security.PasswordHasher,
	tm *security.TokenManager,
	tokens kvstore.Store,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		profiles:     profiles,
		hasher:       hasher,
		tokenManager: tm,
		tokens:       tokens,
		log:          log.With("service", "auth"),
	}
}

func (s *AuthService) Register(ctx context.Context, email, password, fullName, role string) (*domain.Profile, error) {
	if role == "" {
		role = domain.RoleStudent
	}
	if !domain.ValidRole(role) {
		return nil, errors.New("unknown role: " + role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		FullName:     fullName,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	profile, err := s.profiles.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := s.hasher.Compare(profile.PasswordHash, password); err != nil {
		return "", "", domain.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, profile.ID.String())
}

func (s *AuthService) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	userID, err := s.tokenManager.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return "", "", domain.ErrInvalidCredentials
	}
	// Токен должен быть живым в хранилище, иначе он отозван логаутом.
	if _, err := s.tokens.Get(ctx, refreshKeyPrefix+oldRefreshToken); err != nil {
		return "", "", domain.ErrInvalidCredentials
	}
	if err := s.tokens.Del(ctx, refreshKeyPrefix+oldRefreshToken); err != nil {
		s.log.Warn("failed to revoke old refresh token", "err", err)
	}
	return s.issueTokens(ctx, userID)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if err := s.tokens.Del(ctx, refreshKeyPrefix+refreshToken); err != nil {
		s.log.Warn("failed to revoke refresh token", "err", err)
	}
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, userID string) (string, string, error) {
	access, refresh, err := s.tokenManager.Generate(userID)
	if err != nil {
		return "", "", err
	}
	if err := s.tokens.Set(ctx, refreshKeyPrefix+refresh, userID, security.RefreshTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
