package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_VerifyRoundtrip(t *testing.T) {
	t.Parallel()

	digest, err := Password("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, CheckPassword(digest, "secret1"))
	assert.False(t, CheckPassword(digest, "secret2"))
}

func TestPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := Password("secret1")
	require.NoError(t, err)
	second, err := Password("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "secret1"))
	assert.True(t, CheckPassword(second, "secret1"))
}
