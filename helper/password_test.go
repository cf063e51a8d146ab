package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := HashPIN("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckPIN("1234", hash))
	assert.False(t, CheckPIN("4321", hash))
	assert.False(t, CheckPIN("1234", "not-a-hash"))
}
