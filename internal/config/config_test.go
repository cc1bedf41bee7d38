package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "https://api.ffcommunity.site", cfg.Upstream.BaseURL)
	assert.Equal(t, "https://api.ffcommunity.site/assets/storage/images/StickerAccV2.png", cfg.Upstream.BannerURL)
	assert.Equal(t, time.Duration(0), cfg.Upstream.Timeout)
	assert.Equal(t, "font.ttf", cfg.Font.Path)
	assert.Equal(t, "sg", cfg.Default.Region)
	assert.Equal(t, "900000013", cfg.Default.AvatarID)
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STICKER_UPSTREAM_BASE_URL", "http://localhost:9999/")
	t.Setenv("STICKER_FONT_PATH", "/srv/font.ttf")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.Upstream.BaseURL)
	assert.Equal(t, "/srv/font.ttf", cfg.Font.Path)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("PORT", "")
	dir := t.TempDir()
	content := `
upstream:
  timeout: 3s
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sticker.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_RejectsNegativeTimeout(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STICKER_UPSTREAM_TIMEOUT", "-1s")

	_, err := Load()
	assert.Error(t, err)
}
