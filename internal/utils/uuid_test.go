package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_MealID(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.MealID(), g.MealID()
	assert.True(t, strings.HasPrefix(a, MealIDPrefix))
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(strings.TrimPrefix(a, MealIDPrefix))
	assert.NoError(t, err)
}
