package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"MONGO_URI", "DB_NAME", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
		"ADMIN_PASS", "JWT_SECRET", "ADMIN_TOKEN_REQUIRED", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "canteen", cfg.DBName)
	assert.Equal(t, "12345", cfg.AdminPass)
	assert.Equal(t, "3000", cfg.Port)
	assert.False(t, cfg.RequireAdminToken)
	assert.Empty(t, cfg.TelegramBotToken)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "canteen-test")
	t.Setenv("ADMIN_PASS", "hunter2")
	t.Setenv("ADMIN_TOKEN_REQUIRED", "true")
	t.Setenv("PORT", "8080")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "canteen-test", cfg.DBName)
	assert.Equal(t, "hunter2", cfg.AdminPass)
	assert.True(t, cfg.RequireAdminToken)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadIgnoresMalformedBool(t *testing.T) {
	t.Setenv("ADMIN_TOKEN_REQUIRED", "maybe")

	cfg := Load()

	assert.False(t, cfg.RequireAdminToken)
}
