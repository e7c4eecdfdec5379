package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsVersion7(t *testing.T) {
	id := NewID()
	parsed, err := uuid.Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.False(t, id.IsEmpty())
	assert.NotEqual(t, id, NewID())
}

func TestParseRequestID(t *testing.T) {
	want := NewRequestID()

	got, err := ParseRequestID("  " + want.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseRequestID("")
	assert.Error(t, err)
	_, err = ParseRequestID("not-a-uuid")
	assert.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, ID("").IsEmpty())
	assert.True(t, ID("   ").IsEmpty())
	assert.False(t, ID("x").IsEmpty())
}
