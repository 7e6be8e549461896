package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/models"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/domain"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles member sign-up/sign-in and session orchestration
type AuthService struct {
	memberRepo   repositories.MemberRepository
	tokenService *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo repositories.MemberRepository, tokenService *TokenService) *AuthService {
	return &AuthService{
		memberRepo:   memberRepo,
		tokenService: tokenService,
	}
}

// SignUpInput represents sign-up input
type SignUpInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// SignInInput represents sign-in input
type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Member       *models.MemberResponse `json:"member"`
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
}

// SignUp registers a new member and opens a session
func (s *AuthService) SignUp(ctx context.Context, input *SignUpInput) (*AuthResponse, error) {
	exists, err := s.memberRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUsername
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		Username: input.Username,
		Password: hashed,
		Nickname: input.Nickname,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	tokens, err := s.openSession(ctx, member.Username)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Member registered: %s", member.Username)

	return &AuthResponse{
		Member:       member.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// SignIn authenticates a member and opens a session, superseding any
// refresh token stored by an earlier sign-in.
func (s *AuthService) SignIn(ctx context.Context, input *SignInInput) (*AuthResponse, error) {
	member, err := s.memberRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidAuthentication
		}
		return nil, err
	}

	if !password.Verify(input.Password, member.Password) {
		return nil, domain.ErrInvalidAuthentication
	}

	tokens, err := s.openSession(ctx, member.Username)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Member signed in: %s", member.Username)

	return &AuthResponse{
		Member:       member.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// SignOut ends the member's session
func (s *AuthService) SignOut(ctx context.Context, username string) error {
	return s.tokenService.DeleteRefreshToken(ctx, username)
}

// Refresh exchanges a presented refresh token for a fresh token pair. The
// access token comes from the reissue path; the refresh token is rotated
// and the rotated token persisted, revoking the presented one.
func (s *AuthService) Refresh(ctx context.Context, presentedRefresh string) (*TokenPair, error) {
	accessToken, err := s.tokenService.ReissueAccessToken(ctx, presentedRefresh)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokenService.RotateRefreshToken(ctx, presentedRefresh)
	if err != nil {
		return nil, err
	}

	username, err := s.tokenService.Provider().ExtractUsername(refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.tokenService.StoreRefreshToken(ctx, username, refreshToken); err != nil {
		return nil, err
	}

	log.Printf("✅ Token refreshed for member: %s", username)

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetMember reads a member by username
func (s *AuthService) GetMember(ctx context.Context, username string) (*models.Member, error) {
	member, err := s.memberRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", username, domain.ErrMemberNotFound)
		}
		return nil, err
	}
	return member, nil
}

func (s *AuthService) openSession(ctx context.Context, username string) (*TokenPair, error) {
	accessToken, refreshToken, err := s.tokenService.IssueTokenPair(username)
	if err != nil {
		return nil, err
	}
	if err := s.tokenService.StoreRefreshToken(ctx, username, refreshToken); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
