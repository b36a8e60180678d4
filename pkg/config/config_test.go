package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port       int    `env:"TEST_SF_PORT" envDefault:"8080"`
	BackendURL string `env:"TEST_SF_BACKEND_URL" envDefault:"http://127.0.0.1:5000"`
	LogLevel   string `env:"TEST_SF_LOG_LEVEL" envDefault:"info"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	err := Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.BackendURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("TEST_SF_PORT", "9090")
	t.Setenv("TEST_SF_BACKEND_URL", "http://catalog:5000")
	t.Setenv("TEST_SF_LOG_LEVEL", "debug")

	var cfg testConfig
	err := Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://catalog:5000", cfg.BackendURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

type requiredConfig struct {
	BackendURL string `env:"TEST_SF_REQUIRED_URL,required"`
}

func TestLoad_RequiredFieldMissing(t *testing.T) {
	var cfg requiredConfig
	err := Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
