package imagepkg

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

var bannerGray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

func testBanner() *image.NRGBA {
	return imaging.New(520, 220, bannerGray)
}

func testFonts(t *testing.T) *FontSet {
	t.Helper()
	fs, err := ParseFonts(goregular.TTF)
	require.NoError(t, err)
	t.Cleanup(func() { fs.Close() })
	return fs
}

func writeTestFont(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "font.ttf")
	require.NoError(t, os.WriteFile(p, goregular.TTF, 0o644))
	return p
}

func regionChanged(a, b *image.NRGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				return true
			}
		}
	}
	return false
}
