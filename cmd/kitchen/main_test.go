package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen/internal/kitchen"
)

func TestLoadRecipesDefault(t *testing.T) {
	book, err := loadRecipes("")
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestLoadRecipesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"input":"bread","output":"tomato_slices","progress_max":2}]`), 0o644))

	book, err := loadRecipes(path)
	require.NoError(t, err)
	assert.Equal(t, kitchen.RecipeBook{{Input: kitchen.ItemBread, Output: kitchen.ItemTomatoSlices, ProgressMax: 2}}, book)

	_, err = loadRecipes(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"input":"rock","output":"bread","progress_max":1}]`), 0o644))
	_, err = loadRecipes(bad)
	assert.ErrorIs(t, err, kitchen.ErrUnknownItemKind)
}
