package imagepkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFonts(t *testing.T) {
	fs, err := LoadFonts(writeTestFont(t))
	require.NoError(t, err)
	defer fs.Close()

	assert.Greater(t, fs.Name.Metrics().Height, fs.UID.Metrics().Height)
	assert.Equal(t, fs.UID.Metrics().Height, fs.Guild.Metrics().Height)
}

func TestLoadFonts_Failures(t *testing.T) {
	_, err := LoadFonts(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.ErrorIs(t, err, ErrFontLoad)

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))
	_, err = LoadFonts(bad)
	assert.ErrorIs(t, err, ErrFontLoad)
}
