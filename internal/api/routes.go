package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Err(err).Msg("failed to set trusted proxies")
	}
	r.Use(
		requestID(),
		gin.LoggerWithWriter(log.Logger, "/api/health"),
		recovery(),
	)
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/sticker", h.sticker)
		api.GET("/sticker/qr", h.stickerQR)
	}
}
