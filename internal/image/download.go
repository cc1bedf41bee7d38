package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/stickerapp/internal/util"
)

// DownloadImage fetches url and decodes it into an NRGBA bitmap.
// Any failure is reported as util.ErrFetch.
func DownloadImage(ctx context.Context, f *util.Fetcher, url string) (*image.NRGBA, error) {
	body, err := f.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", util.ErrFetch, url, err)
	}
	return imaging.Clone(img), nil
}
