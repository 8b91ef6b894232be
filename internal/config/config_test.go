package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "0 3 * * *", cfg.SweepSchedule)
	assert.Empty(t, cfg.SMTPHost)
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "other")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "other", cfg.JWTSecret)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
}
