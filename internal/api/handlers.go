package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/youruser/stickerapp/internal/account"
	imagepkg "github.com/youruser/stickerapp/internal/image"
)

const (
	msgMissingUID     = "Missing UID"
	msgNoAccount      = "Account Does Not Exist"
	msgGenerateFailed = "Failed to generate sticker"
)

// Handler serves sticker requests.
type Handler struct {
	accounts      *account.Client
	stickers      *imagepkg.Generator
	defaultRegion string
}

func NewHandler(accounts *account.Client, stickers *imagepkg.Generator, defaultRegion string) *Handler {
	if defaultRegion == "" {
		defaultRegion = "sg"
	}
	return &Handler{accounts: accounts, stickers: stickers, defaultRegion: defaultRegion}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sticker renders the account sticker as PNG.
func (h *Handler) sticker(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingUID})
		return
	}
	region := c.DefaultQuery("region", h.defaultRegion)
	ctx := c.Request.Context()
	logger := log.Ctx(ctx).With().Str("uid", uid).Str("region", region).Logger()

	rec, err := h.accounts.Fetch(ctx, uid, region)
	if err != nil {
		logger.Info().Err(err).Msg("account lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": msgNoAccount})
		return
	}

	img, err := h.stickers.Generate(ctx, h.accounts.AvatarURL(rec.AvatarID), imagepkg.Text{
		Name:      rec.Name,
		UID:       uid,
		Level:     rec.Level,
		Likes:     rec.Likes,
		GuildName: rec.GuildName,
	})
	if err != nil {
		logger.Error().Err(err).Msg("sticker generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenerateFailed})
		return
	}

	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		logger.Error().Err(err).Msg("png encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenerateFailed})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// stickerQR returns a QR code linking to the sticker of the same uid/region.
func (h *Handler) stickerQR(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingUID})
		return
	}
	size := 0
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = v
	}

	b, err := imagepkg.GenerateQRPNG(stickerURL(c, uid, c.DefaultQuery("region", h.defaultRegion)), size)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("qr encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenerateFailed})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func stickerURL(c *gin.Context, uid, region string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	q := url.Values{}
	q.Set("uid", uid)
	q.Set("region", region)
	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: "/api/sticker", RawQuery: q.Encode()}
	return u.String()
}
