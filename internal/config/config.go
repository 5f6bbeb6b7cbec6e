package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	HTTPAddr string `mapstructure:"HTTP_ADDR"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// DatabaseDriver is "postgres" or "sqlite"
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	TokenTTL   time.Duration `mapstructure:"TOKEN_TTL"`
	BcryptCost int           `mapstructure:"BCRYPT_COST"`

	// Discord relay is disabled unless both are set
	DiscordToken     string `mapstructure:"DISCORD_TOKEN"`
	DiscordChannelID string `mapstructure:"DISCORD_CHANNEL_ID"`
}

var keys = []string{
	"HTTP_ADDR", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"DATABASE_DRIVER", "DATABASE_URL", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST",
	"DISCORD_TOKEN", "DISCORD_CHANNEL_ID",
}

var (
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
	ErrUnsupportedDriver  = errors.New("DATABASE_DRIVER must be postgres or sqlite")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
)

// Load reads .env (if present), an optional config.yaml and the environment.
// Environment variables win.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "tavern.db")
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("BCRYPT_COST", 0)
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return ErrUnsupportedDriver
	}
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// DiscordEnabled reports whether the Discord relay should start
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}
