package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With no client configured the builder is a no-op: writes succeed
// silently and reads always miss, so callers fall through to the database.
func TestCacheBuilder_NilClient(t *testing.T) {
	builder := NewCacheBuilder(nil, "applications:123").
		WithStruct(map[string]string{"status": "draft"}).
		WithTTL(time.Hour)

	require.NoError(t, builder.Set())

	var dest map[string]string
	found, err := builder.Get(&dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)

	assert.NoError(t, builder.Delete())
}
