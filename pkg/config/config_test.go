package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"1h", time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{" 2d ", 48 * time.Hour, false},
		{"xd", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "60000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "task-manager-api", cfg.JWT.Issuer)
	assert.Equal(t, "task-manager-client", cfg.JWT.Audience)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.IsTest())
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{Env: "production"},
		JWT:  JWTConfig{Secret: defaultJWTSecret, ExpiresIn: time.Hour},
		Auth: AuthConfig{BcryptCost: 12},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "a-real-secret"
	assert.NoError(t, cfg.Validate())

	cfg.Auth.BcryptCost = 2
	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "tasks", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=tasks port=5432 sslmode=disable TimeZone=UTC", d.DSN())

	d.URL = "postgres://u:p@db/tasks"
	assert.Equal(t, "postgres://u:p@db/tasks", d.DSN())
}
