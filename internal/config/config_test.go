package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := NewViper()
	v.Set("discord.token", "token-123")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, "clubspot.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2*time.Minute, cfg.MoveTTL)
}

func TestLoadOverrides(t *testing.T) {
	v := NewViper()
	v.Set("discord.token", "token-123")
	v.Set("database.path", "/tmp/boards.db")
	v.Set("log.level", "debug")
	v.Set("move.ttl_minutes", 10)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/boards.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.MoveTTL)
}

func TestLoadRequiresToken(t *testing.T) {
	_, err := Load(NewViper())
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	v := NewViper()
	v.Set("discord.token", "token-123")
	v.Set("move.ttl_minutes", 0)

	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoadRequiresDatabasePath(t *testing.T) {
	v := NewViper()
	v.Set("discord.token", "token-123")
	v.Set("database.path", "  ")

	_, err := Load(v)
	assert.Error(t, err)
}
