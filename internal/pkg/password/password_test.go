package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("toystory4")
	require.NoError(t, err)
	require.NotEqual(t, "toystory4", hash)

	require.True(t, Verify("toystory4", hash))
	require.False(t, Verify("toystory5", hash))
	require.False(t, Verify("toystory4", "not-a-hash"))
}

func TestValidate(t *testing.T) {
	require.True(t, Validate("12345678"))
	require.False(t, Validate("1234567"))
	require.False(t, Validate(""))
}
