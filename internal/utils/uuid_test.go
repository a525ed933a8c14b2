package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesValidUnique(t *testing.T) {
	g := NewUUIDGenerator()

	id1 := g.Generate()
	id2 := g.Generate()

	_, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}
