package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitchen/internal/kitchen"
)

var _ kitchen.Settings = (*SettingsStore)(nil)

func openTestStore(t *testing.T) (*SettingsStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "settings.db")
	s, err := OpenSettings(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSettingsGetSet(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)

	_, ok, err := s.GetString(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetString(ctx, "InputBindings", `{"bindings":[]}`))
	require.NoError(t, s.SetString(ctx, "InputBindings", `{"bindings":[1]}`))

	v, ok, err := s.GetString(ctx, "InputBindings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"bindings":[1]}`, v)

	require.NoError(t, s.Delete(ctx, "InputBindings"))
	require.NoError(t, s.Delete(ctx, "InputBindings"))
	_, ok, err = s.GetString(ctx, "InputBindings")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTestStore(t)
	require.NoError(t, s.SetString(ctx, "volume", "0.5"))
	require.NoError(t, s.Close())

	reopened, err := OpenSettings(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.GetString(ctx, "volume")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0.5", v)
}

func TestSettingsClosed(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, _, err := s.GetString(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.SetString(ctx, "k", "v"), ErrClosed)
	assert.ErrorIs(t, s.Delete(ctx, "k"), ErrClosed)
}

func TestBindingOverridesThroughStore(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSettings(":memory:")
	require.NoError(t, err)
	defer s.Close()

	set := kitchen.NewBindingSet(s, kitchen.NewEventBus())
	rebind := set.StartRebind(kitchen.BindingInteract, nil)
	res, err := rebind.Offer(ctx, kitchen.Control{Device: kitchen.DeviceKeyboard, Path: "<Keyboard>/q", Name: "Q"})
	require.NoError(t, err)
	require.Equal(t, kitchen.RebindCompleted, res)

	loaded := kitchen.NewBindingSet(s, kitchen.NewEventBus())
	require.NoError(t, loaded.Load(ctx))
	assert.Equal(t, "Q", loaded.Text(kitchen.BindingInteract))
}
