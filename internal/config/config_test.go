package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "words.txt", cfg.WordlistPath)
	assert.Equal(t, spell.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, spell.DefaultMaxCandidates, cfg.MaxCandidates)
	assert.Empty(t, cfg.RedisAddr, "Redis is off unless configured")
	assert.Empty(t, cfg.PostgresDSN, "Postgres is off unless configured")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DICTIONARY_PATH", "/srv/words.txt")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SPELL_THRESHOLD", "1")
	t.Setenv("SPELL_MAX_CANDIDATES", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/srv/words.txt", cfg.WordlistPath)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 1, cfg.Threshold)
	assert.Equal(t, spell.DefaultMaxCandidates, cfg.MaxCandidates, "unparseable values keep the default")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SPELL_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("SPELL_TEST_KEY", "fallback"))
	assert.Equal(t, 7, GetEnvInt("SPELL_TEST_KEY", 7))

	t.Setenv("SPELL_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SPELL_TEST_KEY", "fallback"))
}
