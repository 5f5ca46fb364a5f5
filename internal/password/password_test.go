package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := Hash("Test@1234")
	require.NoError(t, err)
	require.NotEqual(t, "Test@1234", hash)

	match, err := Verify("Test@1234", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := Hash("Test@1234")
	require.NoError(t, err)
	second, err := Hash("Test@1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyWrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := Hash("Test@1234")
	require.NoError(t, err)

	match, err := Verify("Wrong@1234", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	_, err := Verify("Test@1234", "not-a-bcrypt-hash")
	assert.Error(t, err)
}
