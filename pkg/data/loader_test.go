package data

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcerrors "github.com/Melv1no/mcdata/pkg/errors"
)

func TestLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"root/pc/1.8/items.json":   {Data: []byte(`[{"id":1}]`)},
		"root/pc/1.8/recipes.json": {Data: []byte(`{"1":[]}`)},
	}
	loader := NewLoader(NewFSProvider(fsys, "root"))

	t.Run("items", func(t *testing.T) {
		b, err := loader.ReadItems("pc/1.8")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(b))
	})

	t.Run("recipes with trailing slash", func(t *testing.T) {
		b, err := loader.ReadRecipes("pc/1.8/")
		require.NoError(t, err)
		assert.Equal(t, `{"1":[]}`, string(b))
	})

	tests := []struct {
		name string
		read func() ([]byte, error)
	}{
		{"missing items", func() ([]byte, error) { return loader.ReadItems("pc/1.9") }},
		{"missing recipes", func() ([]byte, error) { return loader.ReadRecipes("bedrock/1.0") }},
		{"empty path", func() ([]byte, error) { return loader.ReadItems("") }},
		{"traversal", func() ([]byte, error) { return loader.ReadItems("../etc") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.read()
			require.Error(t, err)
			assert.True(t, mcerrors.IsCode(err, mcerrors.ErrCodeResourceNotFound), "got %v", err)
		})
	}
}

func TestLoaderEmbedded(t *testing.T) {
	loader := NewLoader(Embedded())

	_, err := loader.ReadItems("pc/1.7")
	require.NoError(t, err)

	_, err = loader.ReadRecipes("pc/1.7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pc/1.7/recipes.json")
}
