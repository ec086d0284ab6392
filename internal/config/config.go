package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port          int    `yaml:"port"`
	GinMode       string `yaml:"gin_mode"`
	Production    bool   `yaml:"production"`
	AllowedOrigin string `yaml:"allowed_origin"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

type DedupConfig struct {
	Window string `yaml:"window"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Admin    AdminConfig    `yaml:"admin"`
	Session  SessionConfig  `yaml:"session"`
	Dedup    DedupConfig    `yaml:"dedup"`
}

type Config struct {
	Port          string
	GinMode       string
	Production    bool
	AllowedOrigin string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
	DedupWindow   time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. Every
// secret-carrying field (DSN, redis password, admin credentials) can be
// supplied via environment only, leaving the file free of secrets.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(env("SESSION_TTL", defString(configFile.Session.TTL, "1h")))
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	dedupWindow, err := time.ParseDuration(env("DEDUP_WINDOW", defString(configFile.Dedup.Window, "720h")))
	if err != nil {
		return nil, fmt.Errorf("invalid dedup window: %w", err)
	}

	port := configFile.App.Port
	if v := os.Getenv("PORT"); v != "" {
		port, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	production := configFile.App.Production
	if v := os.Getenv("PRODUCTION"); v != "" {
		production = v == "true"
	}

	return &Config{
		Port:          fmt.Sprintf("%d", port),
		GinMode:       env("GIN_MODE", defString(configFile.App.GinMode, "release")),
		Production:    production,
		AllowedOrigin: env("ALLOWED_ORIGIN", configFile.App.AllowedOrigin),
		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", defString(configFile.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       redisDB,
		AdminUsername: env("ADMIN_USERNAME", configFile.Admin.Username),
		AdminPassword: env("ADMIN_PASSWORD", configFile.Admin.Password),
		SessionTTL:    sessionTTL,
		DedupWindow:   dedupWindow,
	}, nil
}

func defString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		// No file is fine when everything comes from the environment.
		if os.IsNotExist(err) {
			return &ConfigFile{}, nil
		}
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
