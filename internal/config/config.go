// Package config resolves runtime configuration for the binaries from the
// environment, with working defaults for local use.
package config

import (
	"os"
	"strconv"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

// Config carries every knob the binaries need. Empty RedisAddr and
// PostgresDSN disable the respective integrations.
type Config struct {
	HTTPAddr      string
	WordlistPath  string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Threshold     int
	MaxCandidates int
	DistanceCache int
}

// Default returns the built-in settings: local HTTP, a words.txt word list,
// no Redis, no Postgres.
func Default() Config {
	return Config{
		HTTPAddr:      ":8080",
		WordlistPath:  "words.txt",
		Threshold:     spell.DefaultThreshold,
		MaxCandidates: spell.DefaultMaxCandidates,
		DistanceCache: spell.DefaultDistanceCacheSize,
	}
}

// FromEnv overlays environment variables onto the defaults.
func FromEnv() Config {
	cfg := Default()
	cfg.HTTPAddr = GetEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.WordlistPath = GetEnv("DICTIONARY_PATH", cfg.WordlistPath)
	cfg.PostgresDSN = GetEnv("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.RedisAddr = GetEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = GetEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = GetEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.Threshold = GetEnvInt("SPELL_THRESHOLD", cfg.Threshold)
	cfg.MaxCandidates = GetEnvInt("SPELL_MAX_CANDIDATES", cfg.MaxCandidates)
	cfg.DistanceCache = GetEnvInt("SPELL_DISTANCE_CACHE", cfg.DistanceCache)
	return cfg
}

// CheckerOptions translates the configuration into checker options.
func (c Config) CheckerOptions() []spell.Option {
	return []spell.Option{
		spell.WithThreshold(c.Threshold),
		spell.WithMaxCandidates(c.MaxCandidates),
		spell.WithDistanceCache(c.DistanceCache),
	}
}

// GetEnv returns the value of key, or def when unset or empty.
func GetEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// GetEnvInt parses key as an integer, falling back to def.
func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
