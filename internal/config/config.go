package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the process-wide settings of the sticker service.
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Font     FontConfig     `mapstructure:"font"`
	Log      LogConfig      `mapstructure:"log"`
	Default  DefaultConfig  `mapstructure:"default"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// UpstreamConfig points at the account API and the static asset host.
// A zero Timeout leaves the http.Client default in place.
type UpstreamConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	BannerURL string        `mapstructure:"banner_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type FontConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type DefaultConfig struct {
	Region   string `mapstructure:"region"`
	AvatarID string `mapstructure:"avatar_id"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("upstream.base_url", "https://api.ffcommunity.site")
	v.SetDefault("upstream.banner_url", "https://api.ffcommunity.site/assets/storage/images/StickerAccV2.png")
	v.SetDefault("upstream.timeout", time.Duration(0))
	v.SetDefault("font.path", "font.ttf")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("default.region", "sg")
	v.SetDefault("default.avatar_id", "900000013")
}

// Load reads sticker.yaml (optional) from the given directories, then
// STICKER_* environment variables. PORT, when set by the hosting
// platform, replaces the port of http.addr.
func Load(dirs ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("sticker")
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetEnvPrefix("STICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORT")

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if port := v.GetString("port"); port != "" {
		v.Set("http.addr", ":"+port)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream.base_url is empty")
	}
	if c.Upstream.BannerURL == "" {
		return errors.New("upstream.banner_url is empty")
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("upstream.timeout must not be negative, got %s", c.Upstream.Timeout)
	}
	c.Upstream.BaseURL = strings.TrimRight(c.Upstream.BaseURL, "/")
	return nil
}
