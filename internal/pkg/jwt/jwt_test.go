package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestProvider() *Provider {
	return NewProvider("test-secret-key-0123456789abcdef", "gifthub", 30*time.Minute, 15)
}

func TestValidate(t *testing.T) {
	p := newTestProvider()

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		token, err := p.GenerateAccessToken("jinlee1703")
		require.NoError(t, err)

		res := p.Validate("Bearer " + token)
		require.True(t, res.OK())
	})

	t.Run("prefix match is case-insensitive", func(t *testing.T) {
		token, err := p.GenerateAccessToken("jinlee1703")
		require.NoError(t, err)

		res := p.Validate("bEaReR " + token)
		require.True(t, res.OK())
	})

	t.Run("rejects a token without the Bearer prefix", func(t *testing.T) {
		token, err := p.GenerateAccessToken("jinlee1703")
		require.NoError(t, err)

		res := p.Validate(token)
		require.False(t, res.OK())
		require.Equal(t, CauseMissingPrefix, res.Cause)
	})

	t.Run("rejects an empty string", func(t *testing.T) {
		res := p.Validate("")
		require.Equal(t, CauseMissingPrefix, res.Cause)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewProvider("test-secret-key-0123456789abcdef", "gifthub", -time.Minute, 15)
		token, err := expired.GenerateAccessToken("jinlee1703")
		require.NoError(t, err)

		res := p.Validate("Bearer " + token)
		require.False(t, res.OK())
		require.Equal(t, CauseExpired, res.Cause)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		other := NewProvider("another-secret-key-fedcba98765432", "gifthub", 30*time.Minute, 15)
		token, err := other.GenerateAccessToken("jinlee1703")
		require.NoError(t, err)

		res := p.Validate("Bearer " + token)
		require.False(t, res.OK())
		require.Equal(t, CauseBadSignature, res.Cause)
	})

	t.Run("rejects garbage after the prefix", func(t *testing.T) {
		res := p.Validate("Bearer not.a.token")
		require.False(t, res.OK())
		require.Equal(t, CauseMalformed, res.Cause)
	})
}

func TestExtractUsername(t *testing.T) {
	p := newTestProvider()

	t.Run("returns the subject claim", func(t *testing.T) {
		token, err := p.GenerateAccessToken("jinlee1703")
		require.NoError(t, err)

		username, err := p.ExtractUsername(token)
		require.NoError(t, err)
		require.Equal(t, "jinlee1703", username)
	})

	t.Run("fails on a malformed token", func(t *testing.T) {
		_, err := p.ExtractUsername("not.a.token")
		require.ErrorIs(t, err, ErrMalformedToken)
	})
}

func TestExtractIssuedAt(t *testing.T) {
	p := newTestProvider()

	before := time.Now().Add(-time.Second)
	token, err := p.GenerateRefreshToken("jinlee1703")
	require.NoError(t, err)
	after := time.Now().Add(time.Second)

	issuedAt, err := p.ExtractIssuedAt(token)
	require.NoError(t, err)
	require.True(t, issuedAt.After(before) && issuedAt.Before(after))
}

func TestRefreshTokenLifetime(t *testing.T) {
	p := newTestProvider()

	token, err := p.GenerateRefreshToken("jinlee1703")
	require.NoError(t, err)

	res := p.Validate("Bearer " + token)
	require.True(t, res.OK())
}
