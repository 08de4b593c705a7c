package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "GIN_MODE", "DATABASE_URL", "DATABASE_NAME", "ALLOWED_ORIGINS",
		"R2_BUCKET", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_ENDPOINT",
		"MAX_UPLOAD_SIZE_MB", "MAX_PRODUCT_IMAGES",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.DatabaseConfigured())
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, 5, cfg.Uploads.MaxSizeMB)
	assert.Equal(t, 4, cfg.Uploads.MaxFiles)
	assert.Contains(t, cfg.Uploads.AllowedExtensions, ".png")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "store")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("R2_BUCKET", "media")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_ENDPOINT", "https://acct.r2.cloudflarestorage.com")
	t.Setenv("R2_PUBLIC_DOMAIN", "https://files.example/")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.DatabaseConfigured())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Storage.Enabled())
	assert.Equal(t, "https://files.example", cfg.Storage.PublicDomain)
	assert.Equal(t, 5, cfg.Uploads.MaxSizeMB)
}

func TestFromEnv_GinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	assert.Equal(t, "debug", FromEnv().GinMode)

	t.Setenv("GIN_MODE", "production")
	assert.Equal(t, "release", FromEnv().GinMode)
}

func TestDatabaseConfigured_NeedsBothSettings(t *testing.T) {
	cfg := &Config{DatabaseURL: "mongodb://localhost"}
	assert.False(t, cfg.DatabaseConfigured())

	cfg.DatabaseName = "store"
	assert.True(t, cfg.DatabaseConfigured())
}
