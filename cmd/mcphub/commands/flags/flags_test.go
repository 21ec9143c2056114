package flags

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcphub/internal/config"
	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/internal/release"
	"github.com/thoreinstein/mcphub/internal/store"
	"github.com/thoreinstein/mcphub/internal/store/mocks"
)

func TestConfig_DefaultsWhenUnset(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { SetConfig(prev) })

	SetConfig(nil)
	assert.Equal(t, config.Default(), Config())

	custom := config.Default()
	custom.Serve.Addr = ":9999"
	SetConfig(custom)
	assert.Same(t, custom, Config())
}

func TestOpenStore(t *testing.T) {
	m := mocks.NewMockStore(t)
	m.EXPECT().Initialize(mock.Anything).Return(nil)
	restore := SetStoreFactory(func(*config.Config) store.Store { return m })
	t.Cleanup(restore)

	s, err := OpenStore(t.Context())
	require.NoError(t, err)
	assert.Same(t, m, s)
}

func TestOpenStore_InitializeFails(t *testing.T) {
	m := mocks.NewMockStore(t)
	m.EXPECT().Initialize(mock.Anything).Return(store.ErrInvalidSettings)
	restore := SetStoreFactory(func(*config.Config) store.Store { return m })
	t.Cleanup(restore)

	_, err := OpenStore(t.Context())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrInvalidSettings))
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
}

func TestNewFileStore_UsesConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	c := config.Default()
	c.SettingsFile = filepath.Join(dir, "settings.json")
	c.StatusFile = filepath.Join(dir, "status.json")

	s := NewFileStore(c)
	require.NoError(t, s.Initialize(t.Context()))

	servers, err := s.Servers(t.Context())
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestNewReleaseChecker(t *testing.T) {
	c := config.Default()
	c.Release.BaseURL = "https://ghe.example.com/api/v3"

	checker, err := NewReleaseChecker(c)
	require.NoError(t, err)
	assert.IsType(t, &release.Checker{}, checker)

	c.Release.Owner = ""
	_, err = NewReleaseChecker(c)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
