package imagepkg

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ErrFontLoad means the bundled typeface could not be read or parsed.
var ErrFontLoad = errors.New("font load failed")

// Point sizes per text role.
const (
	NameFontSize  = 30
	UIDFontSize   = 25
	GuildFontSize = 25
)

// FontSet holds one typeface at the sizes used by the sticker layout.
// Faces are not safe for concurrent use; load one set per render.
type FontSet struct {
	Name  font.Face
	UID   font.Face
	Guild font.Face
}

// LoadFonts reads the typeface at path and builds the three faces.
func LoadFonts(path string) (*FontSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return ParseFonts(b)
}

func ParseFonts(ttf []byte) (*FontSet, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	fs := &FontSet{}
	for _, v := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fs.Name, NameFontSize},
		{&fs.UID, UIDFontSize},
		{&fs.Guild, GuildFontSize},
	} {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    v.size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		*v.dst = face
	}
	return fs, nil
}

func (fs *FontSet) Close() error {
	for _, f := range []font.Face{fs.Name, fs.UID, fs.Guild} {
		if f != nil {
			f.Close()
		}
	}
	return nil
}
