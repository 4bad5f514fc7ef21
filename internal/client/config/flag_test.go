package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://db:9090", "-u", "admin", "-p", "pw", "-d", "orders", "-t", "10"},
			expected: &Config{
				Endpoint:       "http://db:9090",
				Username:       "admin",
				Password:       "pw",
				Database:       "orders",
				RequestTimeout: 10 * time.Second,
			},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-a", "http://db:9090", "-t", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
