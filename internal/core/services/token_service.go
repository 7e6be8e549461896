package services

import (
	"context"
	"errors"
	"log"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/domain"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/jwt"

	"gorm.io/gorm"
)

// TokenService owns the refresh token lifecycle. Access tokens are stateless;
// refresh tokens are tracked server-side, one per member, so overwriting or
// deleting the stored row revokes a token whose signature is still valid.
type TokenService struct {
	provider         *jwt.Provider
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewTokenService creates a new token service
func NewTokenService(provider *jwt.Provider, refreshTokenRepo repositories.RefreshTokenRepository) *TokenService {
	return &TokenService{
		provider:         provider,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Provider exposes the underlying token provider for middleware use
func (s *TokenService) Provider() *jwt.Provider {
	return s.provider
}

// IssueTokenPair issues a fresh access/refresh token pair for a member
func (s *TokenService) IssueTokenPair(username string) (accessToken, refreshToken string, err error) {
	accessToken, err = s.provider.GenerateAccessToken(username)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.provider.GenerateRefreshToken(username)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// StoreRefreshToken persists a refresh token, superseding any stored token
// for the same member. The row's created_at carries the token's issued-at
// claim rather than the write time.
func (s *TokenService) StoreRefreshToken(ctx context.Context, username, refreshToken string) error {
	issuedAt, err := s.provider.ExtractIssuedAt(refreshToken)
	if err != nil {
		return err
	}

	record := &models.RefreshToken{
		Username:  username,
		Token:     refreshToken,
		CreatedAt: issuedAt,
	}
	return s.refreshTokenRepo.Upsert(ctx, record)
}

// ReissueAccessToken exchanges a refresh token for a fresh access token.
// The presented token must byte-for-byte equal the stored token for its
// subject; the stored token is not rotated by this call.
func (s *TokenService) ReissueAccessToken(ctx context.Context, presentedRefresh string) (string, error) {
	username, err := s.verifyAgainstStored(ctx, presentedRefresh)
	if err != nil {
		return "", err
	}
	return s.provider.GenerateAccessToken(username)
}

// RotateRefreshToken verifies the presented refresh token against the store
// and issues a brand-new refresh token. The caller persists the new token
// via StoreRefreshToken, which supersedes the old one.
func (s *TokenService) RotateRefreshToken(ctx context.Context, presentedRefresh string) (string, error) {
	username, err := s.verifyAgainstStored(ctx, presentedRefresh)
	if err != nil {
		return "", err
	}
	return s.provider.GenerateRefreshToken(username)
}

// DeleteRefreshToken ends a member's session. Logging out with no active
// session is an authentication error, not a no-op.
func (s *TokenService) DeleteRefreshToken(ctx context.Context, username string) error {
	err := s.refreshTokenRepo.DeleteByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoActiveSession
		}
		return err
	}

	log.Printf("✅ Session ended for member: %s", username)
	return nil
}

func (s *TokenService) verifyAgainstStored(ctx context.Context, presentedRefresh string) (string, error) {
	username, err := s.provider.ExtractUsername(presentedRefresh)
	if err != nil {
		return "", err
	}

	stored, err := s.refreshTokenRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRefreshTokenMismatch
		}
		return "", err
	}

	if stored.Token != presentedRefresh {
		return "", domain.ErrRefreshTokenMismatch
	}
	return username, nil
}
