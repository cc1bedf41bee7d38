package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/youruser/stickerapp/internal/account"
	"github.com/youruser/stickerapp/internal/api"
	"github.com/youruser/stickerapp/internal/config"
	imagepkg "github.com/youruser/stickerapp/internal/image"
	"github.com/youruser/stickerapp/internal/logging"
	"github.com/youruser/stickerapp/internal/util"
)

func main() {
	cfg, err := config.Load(".", "/etc/sticker")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if fonts, err := imagepkg.LoadFonts(cfg.Font.Path); err != nil {
		log.Warn().Err(err).Str("path", cfg.Font.Path).Msg("font not loadable, stickers will fail until it is")
	} else {
		fonts.Close()
	}

	gin.SetMode(gin.ReleaseMode)
	fetcher := util.NewFetcher(cfg.Upstream.Timeout)
	h := api.NewHandler(
		account.NewClient(fetcher, cfg.Upstream.BaseURL, cfg.Default.AvatarID),
		imagepkg.NewGenerator(fetcher, cfg.Upstream.BannerURL, cfg.Font.Path),
		cfg.Default.Region,
	)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: api.NewRouter(h),
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
