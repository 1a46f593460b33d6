package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/coverart/internal/types"
)

// mockExtractor implements ImageExtractor for testing.
type mockExtractor struct {
	name string
}

func (m *mockExtractor) ExtractImage(buf []byte, opts types.ExtractOptions) (*types.Image, error) {
	return &types.Image{Description: m.name}, nil
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.Format(999)
	Register(format, &mockExtractor{name: "test"})

	got := Get(format)
	require.NotNil(t, got)

	img, err := got.ExtractImage(nil, types.ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, "test", img.Description)
}

func TestGet_Unregistered(t *testing.T) {
	assert.Nil(t, Get(types.Format(998)))
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.Format(997)
	Register(format, &mockExtractor{name: "first"})
	Register(format, &mockExtractor{name: "second"})

	mp, ok := Get(format).(*mockExtractor)
	require.True(t, ok)
	assert.Equal(t, "second", mp.name)
}
