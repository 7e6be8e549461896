package services

import (
	"context"
	"testing"

	"github.com/jinlee1703/gifthub-was-cicd/internal/core/domain"

	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc        *AuthService
	memberRepo *fakeMemberRepo
	tokenRepo  *fakeRefreshTokenRepo
}

func newAuthFixture() *authFixture {
	memberRepo := newFakeMemberRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	return &authFixture{
		svc:        NewAuthService(memberRepo, newTestTokenService(tokenRepo)),
		memberRepo: memberRepo,
		tokenRepo:  tokenRepo,
	}
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a member and opens a session", func(t *testing.T) {
		f := newAuthFixture()

		resp, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4", Nickname: "우디"})
		require.NoError(t, err)
		require.Equal(t, "woody", resp.Member.Username)
		require.NotEmpty(t, resp.AccessToken)
		require.NotEmpty(t, resp.RefreshToken)

		stored, err := f.tokenRepo.FindByUsername(ctx, "woody")
		require.NoError(t, err)
		require.Equal(t, resp.RefreshToken, stored.Token)

		member, err := f.memberRepo.GetByUsername(ctx, "woody")
		require.NoError(t, err)
		require.NotEqual(t, "toystory4", member.Password)
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)

		_, err = f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "different1"})
		require.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("sign-in supersedes the previous session's refresh token", func(t *testing.T) {
		f := newAuthFixture()

		signUp, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)

		signIn, err := f.svc.SignIn(ctx, &SignInInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)
		require.NotEqual(t, signUp.RefreshToken, signIn.RefreshToken)

		_, err = f.svc.Refresh(ctx, signUp.RefreshToken)
		require.ErrorIs(t, err, domain.ErrRefreshTokenMismatch)

		_, err = f.svc.Refresh(ctx, signIn.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)

		_, err = f.svc.SignIn(ctx, &SignInInput{Username: "woody", Password: "wrongpass"})
		require.ErrorIs(t, err, domain.ErrInvalidAuthentication)
	})

	t.Run("unknown member reports the same error as a wrong password", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.svc.SignIn(ctx, &SignInInput{Username: "ghost", Password: "whatever1"})
		require.ErrorIs(t, err, domain.ErrInvalidAuthentication)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotation revokes the presented token", func(t *testing.T) {
		f := newAuthFixture()

		signUp, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)

		pair, err := f.svc.Refresh(ctx, signUp.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEqual(t, signUp.RefreshToken, pair.RefreshToken)

		_, err = f.svc.Refresh(ctx, signUp.RefreshToken)
		require.ErrorIs(t, err, domain.ErrRefreshTokenMismatch)

		stored, err := f.tokenRepo.FindByUsername(ctx, "woody")
		require.NoError(t, err)
		require.Equal(t, pair.RefreshToken, stored.Token)
	})
}

func TestAuthService_SignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("sign-out revokes the refresh token", func(t *testing.T) {
		f := newAuthFixture()

		resp, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)

		require.NoError(t, f.svc.SignOut(ctx, "woody"))

		_, err = f.svc.Refresh(ctx, resp.RefreshToken)
		require.ErrorIs(t, err, domain.ErrRefreshTokenMismatch)
	})

	t.Run("double sign-out", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.svc.SignUp(ctx, &SignUpInput{Username: "woody", Password: "toystory4"})
		require.NoError(t, err)

		require.NoError(t, f.svc.SignOut(ctx, "woody"))
		require.ErrorIs(t, f.svc.SignOut(ctx, "woody"), domain.ErrNoActiveSession)
	})
}
