package imagepkg

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrNoBanner means the template image was not available.
var ErrNoBanner = errors.New("banner unavailable")

// Fixed sticker layout, in banner pixels.
const AvatarSize = 100

var (
	AvatarPos = image.Pt(64, 57)
	NamePos   = image.Pt(180, 50)
	LevelPos  = image.Pt(45, 160)
	UIDPos    = image.Pt(284, 161)
	LikesPos  = image.Pt(360, 120)
	GuildPos  = image.Pt(300, 10)
)

// Text carries the overlay strings. Empty UID, Likes and GuildName are
// not drawn.
type Text struct {
	Name      string
	UID       string
	Level     string
	Likes     string
	GuildName string
}

// LevelText prefixes level with "Lv" unless it already carries it.
func LevelText(level string) string {
	if strings.HasPrefix(level, "Lv") {
		return level
	}
	return "Lv" + level
}

// ComposeSticker draws avatar and text over a copy of banner.
// avatar may be nil; banner and fonts may not.
func ComposeSticker(banner, avatar image.Image, fonts *FontSet, t Text) (*image.NRGBA, error) {
	if banner == nil {
		return nil, ErrNoBanner
	}
	if fonts == nil {
		return nil, ErrFontLoad
	}

	canvas := imaging.Clone(banner)

	if avatar != nil {
		a := imaging.Resize(avatar, AvatarSize, AvatarSize, imaging.Lanczos)
		canvas = imaging.Overlay(canvas, a, AvatarPos, 1.0)
	}

	drawText(canvas, fonts.Name, NamePos, color.Black, t.Name)
	drawText(canvas, fonts.Name, LevelPos, color.Black, LevelText(t.Level))

	if t.UID != "" {
		drawText(canvas, fonts.UID, UIDPos, color.White, "UID: "+t.UID)
	}
	if t.Likes != "" {
		drawText(canvas, fonts.Name, LikesPos, color.Black, t.Likes)
	}
	if t.GuildName != "" {
		drawText(canvas, fonts.Guild, GuildPos, color.White, t.GuildName)
	}
	return canvas, nil
}

// drawText places s with its ascender line at pt.Y, matching a top-left
// text anchor.
func drawText(dst *image.NRGBA, face font.Face, pt image.Point, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(pt.X),
			Y: fixed.I(pt.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
}

// EncodePNG serialises img. The output carries no timestamps, so equal
// bitmaps encode to equal bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
