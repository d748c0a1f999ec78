package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func setConfigEnv(t *testing.T, env map[string]string) {
	t.Helper()

	keys := []string{
		"BOT_TOKEN", "API_BASE_URL", "API_TIMEOUT_SECONDS",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	}
	for _, key := range keys {
		key := key
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		if had {
			t.Cleanup(func() { os.Setenv(key, original) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
	}
	for key, value := range env {
		os.Setenv(key, value)
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"DB_PASSWORD": "secret",
	})

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"BOT_TOKEN": "test_token",
	})

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"BOT_TOKEN":   "test_token",
		"DB_PASSWORD": "secret",
	})

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "nameswipe", cfg.Database.Name)
	assert.Equal(t, "nameswipe", cfg.Database.User)
}

func TestLoad_CustomAPISettings(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"BOT_TOKEN":           "test_token",
		"DB_PASSWORD":         "secret",
		"API_BASE_URL":        "https://names.example.com/api",
		"API_TIMEOUT_SECONDS": "5",
	})

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "https://names.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	setConfigEnv(t, map[string]string{
		"BOT_TOKEN":           "test_token",
		"DB_PASSWORD":         "secret",
		"API_TIMEOUT_SECONDS": "soon",
	})

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "API_TIMEOUT_SECONDS")
}
