package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 128, cfg.Cache.Size)
	require.Empty(t, cfg.Log.FileName)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modsym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  filename: /tmp/modsym.log
  compress: true
cache:
  size: 16
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/modsym.log", cfg.Log.FileName)
	require.True(t, cfg.Log.Compress)
	require.Equal(t, 16, cfg.Cache.Size)
	require.Equal(t, 10, cfg.Log.MaxSize)
}

func TestEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MODSYM_CACHE_SIZE", "3")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Cache.Size)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
