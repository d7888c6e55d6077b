package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("TESSDATA_PREFIX", "")

	cfg := Load()
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("TESSDATA_PREFIX", "/opt/tessdata")

	cfg := Load()
	assert.Equal(t, "9100", cfg.ServerPort)
	assert.Equal(t, "/opt/tessdata", cfg.TessdataPrefix)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}
