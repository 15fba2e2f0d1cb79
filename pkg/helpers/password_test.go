package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	assert.True(t, CompareHashAndPassword(hash, "pw123"))
	assert.False(t, CompareHashAndPassword(hash, "pw124"))
	assert.False(t, CompareHashAndPassword(hash, ""))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("pw123")
	require.NoError(t, err)
	h2, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
