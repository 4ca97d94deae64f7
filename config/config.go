package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds process-wide settings, loaded once at startup.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Timeline TimelineConfig `mapstructure:"timeline"`
	Identity IdentityConfig `mapstructure:"identity_cache"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	RateLimit int    `mapstructure:"rate_limit"` // requests/sec per client, 0 disables
	RateBurst int    `mapstructure:"rate_burst"`
}

type DatabaseConfig struct {
	DSN             string `mapstructure:"dsn"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // seconds
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	TokenTTL  int    `mapstructure:"token_ttl"` // seconds
}

// TimelineConfig carries the aggregation windows and caps. ScanWindow bounds
// the global recent-N scans that feed the friends' entries/comments feeds.
type TimelineConfig struct {
	ScanWindow      int `mapstructure:"scan_window"`
	OwnEntries      int `mapstructure:"own_entries"`
	CommentsForMe   int `mapstructure:"comments_for_me"`
	FeedEntries     int `mapstructure:"feed_entries"`
	FeedComments    int `mapstructure:"feed_comments"`
	HomeFootprints  int `mapstructure:"home_footprints"`
	PageFootprints  int `mapstructure:"page_footprints"`
	ProfileEntries  int `mapstructure:"profile_entries"`
	DiaryEntries    int `mapstructure:"diary_entries"`
}

// IdentityConfig controls identity-cache miss handling. Strict preserves the
// cache-only lookup semantics (a cold cache reads as content-not-found);
// the default falls back to the relational store and backfills the cache.
type IdentityConfig struct {
	Strict bool `mapstructure:"strict"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TracingConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads config.yaml from the working directory (if present) and the
// SNS_* environment, env taking precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("sns")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 20)

	v.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=sns port=5432 sslmode=disable")
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 300)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "beermoris")
	v.SetDefault("auth.token_ttl", 86400)

	v.SetDefault("timeline.scan_window", 1000)
	v.SetDefault("timeline.own_entries", 5)
	v.SetDefault("timeline.comments_for_me", 10)
	v.SetDefault("timeline.feed_entries", 10)
	v.SetDefault("timeline.feed_comments", 10)
	v.SetDefault("timeline.home_footprints", 10)
	v.SetDefault("timeline.page_footprints", 50)
	v.SetDefault("timeline.profile_entries", 5)
	v.SetDefault("timeline.diary_entries", 20)

	v.SetDefault("identity_cache.strict", false)

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("tracing.otlp_endpoint", "")

	v.SetDefault("log.level", "info")
}
