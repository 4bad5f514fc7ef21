package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.Endpoint)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Empty(t, c.Username)
	assert.Empty(t, c.Database)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
