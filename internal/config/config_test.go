package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 120*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, []string{"http://localhost", "http://localhost:5173"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "vadi:notifications", cfg.Redis.Channel)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.GeminiModel)
	assert.ErrorIs(t, cfg.RequireEndpoints(), ErrNoEndpoints)
}

func TestFromViper_EnvEndpoints(t *testing.T) {
	t.Setenv("VADI_OPENAI_URL", "https://api.example.com/api/openai/")
	t.Setenv("VADI_CLAUDE_URL", "https://api.example.com/api/claude")
	t.Setenv("VADI_HTTP_TIMEOUT", "45s")
	t.Setenv("VADI_CORS_ORIGINS", "https://front.example.com, http://localhost:5173")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)
	require.NoError(t, cfg.RequireEndpoints())

	require.Len(t, cfg.Models, 2)
	assert.Equal(t, "chatgpt", cfg.Models[0].ID)
	assert.Equal(t, "https://api.example.com/api/openai", cfg.Models[0].Endpoint, "trailing slash is trimmed")
	assert.Equal(t, "claude", cfg.Models[1].ID)
	assert.Equal(t, "bg-purple-500", cfg.Models[1].Color)
	assert.Equal(t, 45*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, []string{"https://front.example.com", "http://localhost:5173"}, cfg.HTTP.CORSOrigins)
}

func TestFromViper_InvalidTimeout(t *testing.T) {
	v := newViper()
	v.Set("http.timeout", "0s")
	_, err := FromViper(v)
	require.Error(t, err)
}
