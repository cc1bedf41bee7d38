package imagepkg

import (
	"context"
	"image"

	"github.com/rs/zerolog/log"

	"github.com/youruser/stickerapp/internal/util"
)

// Generator fetches the banner, the avatar and the fonts for one sticker
// and composes them. Nothing is cached between calls.
type Generator struct {
	fetcher   *util.Fetcher
	bannerURL string
	fontPath  string
}

func NewGenerator(f *util.Fetcher, bannerURL, fontPath string) *Generator {
	return &Generator{fetcher: f, bannerURL: bannerURL, fontPath: fontPath}
}

// Generate renders a sticker. A failed avatar download only drops the
// avatar; banner and font failures are returned.
func (g *Generator) Generate(ctx context.Context, avatarURL string, t Text) (*image.NRGBA, error) {
	banner, err := DownloadImage(ctx, g.fetcher, g.bannerURL)
	if err != nil {
		return nil, ErrNoBanner
	}

	var avatar image.Image
	if a, err := DownloadImage(ctx, g.fetcher, avatarURL); err == nil {
		avatar = a
	} else {
		log.Ctx(ctx).Info().Str("url", avatarURL).Msg("avatar unavailable, rendering without it")
	}

	fonts, err := LoadFonts(g.fontPath)
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	return ComposeSticker(banner, avatar, fonts, t)
}
