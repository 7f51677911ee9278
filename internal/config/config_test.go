package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Template)
	assert.Empty(t, cfg.PackageManager)
	assert.False(t, cfg.SkipInstall)
}

func TestLoad_WithConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	content := "template: blog\npackage_manager: pnpm\nskip_install: true\n"
	err := os.WriteFile(filepath.Join(home, ".backforge.yaml"), []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "blog", cfg.Template)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.SkipInstall)
}

func TestLoad_MalformedConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := os.WriteFile(filepath.Join(home, ".backforge.yaml"), []byte("template: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user config")
}
