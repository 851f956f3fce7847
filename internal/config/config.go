package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application settings.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Cache    CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig holds the optional cache backend settings. An empty Addr
// disables caching entirely.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig holds authentication settings. AdminEmails is the allow-list
// gating the admin endpoints; it is injected into the auth service at
// startup rather than read globally.
type AuthConfig struct {
	AdminEmails      string `mapstructure:"admin_emails"`
	TokenLifetimeHrs int    `mapstructure:"token_lifetime_hrs"`
}

// CacheConfig holds cache tuning.
type CacheConfig struct {
	TopicsTTLSec int `mapstructure:"topics_ttl_sec"`
}

// PostgresConnectionString builds the PostgreSQL DSN.
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// AdminEmailList returns the normalized admin allow-list: trimmed,
// lowercased, empty entries dropped. An empty list means the admin gate is
// open to every authenticated user.
func (a *AuthConfig) AdminEmailList() []string {
	var emails []string
	for _, raw := range strings.Split(a.AdminEmails, ",") {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// Load reads the configuration from an optional file plus environment
// variables. Each key is bound explicitly so the env surface stays
// auditable.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // a fresh instance avoids global viper state

	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 15)
	vip.SetDefault("server.write_timeout", 15)
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("auth.token_lifetime_hrs", 720)
	vip.SetDefault("cache.topics_ttl_sec", 60)

	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")

	vip.BindEnv("auth.admin_emails", "ADMIN_EMAILS")
	vip.BindEnv("auth.token_lifetime_hrs", "AUTH_TOKEN_LIFETIME_HRS")

	vip.BindEnv("cache.topics_ttl_sec", "CACHE_TOPICS_TTL_SEC")

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("[Config] file %q not found, using environment/defaults", configPath)
			} else {
				log.Printf("[Config] warning: could not read %q: %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if cfg.Auth.TokenLifetimeHrs <= 0 {
		return nil, fmt.Errorf("auth token lifetime must be positive (check AUTH_TOKEN_LIFETIME_HRS)")
	}

	return &cfg, nil
}
