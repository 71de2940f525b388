// Package config loads application configuration from config.yml and
// environment variables.
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	DBDSN    string `mapstructure:"DB_DSN"`
	LogFile  string `mapstructure:"LOG_FILE"`

	// LikesPersistence selects where the per-session like overlay lives:
	// "memory" reproduces the ephemeral demo behavior, "store" keeps it in
	// sqlite across reloads.
	LikesPersistence string `mapstructure:"LIKES_PERSISTENCE"`

	Engine EngineConfig `mapstructure:",squash"`
}

// EngineConfig holds the interaction-engine tunables. Defaults reproduce the
// production UI constants; they are configurable so tests and embedded uses
// can tighten them.
type EngineConfig struct {
	DragThresholdPx    float64 `mapstructure:"DRAG_THRESHOLD_PX"`
	ClickBudgetMs      int     `mapstructure:"CLICK_BUDGET_MS"`
	ResizeDebounceMs   int     `mapstructure:"RESIZE_DEBOUNCE_MS"`
	SwipeThresholdPx   float64 `mapstructure:"SWIPE_THRESHOLD_PX"`
	ImageSlideMs       int     `mapstructure:"IMAGE_SLIDE_MS"`
	DescriptionSlideMs int     `mapstructure:"DESCRIPTION_SLIDE_MS"`
	ShakeMs            int     `mapstructure:"SHAKE_MS"`
	NoticeHoldMs       int     `mapstructure:"NOTICE_HOLD_MS"`
	NoticeFadeMs       int     `mapstructure:"NOTICE_FADE_MS"`
	SearchBarHideMs    int     `mapstructure:"SEARCHBAR_HIDE_MS"`
}

func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_DSN", "heartdrop.db")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LIKES_PERSISTENCE", "memory")

	viper.SetDefault("DRAG_THRESHOLD_PX", 5.0)
	viper.SetDefault("CLICK_BUDGET_MS", 1000)
	viper.SetDefault("RESIZE_DEBOUNCE_MS", 150)
	viper.SetDefault("SWIPE_THRESHOLD_PX", 50.0)
	viper.SetDefault("IMAGE_SLIDE_MS", 3000)
	viper.SetDefault("DESCRIPTION_SLIDE_MS", 5000)
	viper.SetDefault("SHAKE_MS", 600)
	viper.SetDefault("NOTICE_HOLD_MS", 1000)
	viper.SetDefault("NOTICE_FADE_MS", 300)
	viper.SetDefault("SEARCHBAR_HIDE_MS", 1000)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.LikesPersistence != "memory" && cfg.LikesPersistence != "store" {
		return nil, fmt.Errorf("invalid LIKES_PERSISTENCE %q (want memory or store)", cfg.LikesPersistence)
	}

	log.Printf("[config] PORT=%s DB_DSN=%s LIKES_PERSISTENCE=%s", cfg.Port, cfg.DBDSN, cfg.LikesPersistence)
	return &cfg, nil
}
