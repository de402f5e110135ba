package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/gitcmd/fs"
)

func TestDefaultConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "gitcmd"), fs.DefaultConfigDir())
	})

	t.Run("falls back to the home config dir", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		dir := fs.DefaultConfigDir()
		require.NotEmpty(t, dir)
		assert.Equal(t, "gitcmd", filepath.Base(dir))
		assert.Equal(t, ".config", filepath.Base(filepath.Dir(dir)))
	})
}

func TestDefaultEnvFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "gitcmd", "env"), fs.DefaultEnvFile())
}
