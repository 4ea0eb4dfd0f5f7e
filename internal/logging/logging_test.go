package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, development := range []bool{false, true} {
		logger, err := New(1, development)
		require.NoError(t, err)
		assert.True(t, logger.V(1).Enabled())
		assert.False(t, logger.V(2).Enabled())
	}
}

func TestNewDefaultLevel(t *testing.T) {
	logger, err := New(0, false)
	require.NoError(t, err)
	assert.True(t, logger.Enabled())
	assert.False(t, logger.V(1).Enabled())
}

func TestNewNegativeLevel(t *testing.T) {
	_, err := New(-1, false)
	assert.Error(t, err)
}
