package account

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/youruser/stickerapp/internal/util"
)

// ErrNotFound covers unreachable upstreams, bad statuses, bad JSON and
// accounts without a name alike.
var ErrNotFound = errors.New("account does not exist")

// Client talks to the account-data API and knows the asset host layout.
type Client struct {
	fetcher         *util.Fetcher
	baseURL         string
	defaultAvatarID string
}

func NewClient(f *util.Fetcher, baseURL, defaultAvatarID string) *Client {
	return &Client{fetcher: f, baseURL: baseURL, defaultAvatarID: defaultAvatarID}
}

func (c *Client) infoURL(uid, region string) string {
	q := url.Values{}
	q.Set("uid", uid)
	q.Set("region", region)
	return c.baseURL + "/api/php/info.php?" + q.Encode()
}

// AvatarURL returns the icon location for an avatar id.
func (c *Client) AvatarURL(avatarID string) string {
	return c.baseURL + "/assets/library/icon/pot/" + url.PathEscape(avatarID) + ".png"
}

// Fetch loads and normalises one account.
func (c *Client) Fetch(ctx context.Context, uid, region string) (*Record, error) {
	var resp infoResponse
	if err := c.fetcher.GetJSON(ctx, c.infoURL(uid, region), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	rec, ok := resp.record(c.defaultAvatarID)
	if !ok {
		log.Debug().Str("uid", uid).Str("region", region).Msg("account has no name")
		return nil, ErrNotFound
	}
	return rec, nil
}
