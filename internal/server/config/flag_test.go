package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
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
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-m", "memory", "-s", "secret",
				"-t", "3600", "-b", "12", "-w", "5",
			},
			expected: &Config{
				EndpointAddrHTTP:      "127.0.0.1:9090",
				DatabaseDSN:           "db",
				StorageType:           StorageMemory,
				SecretKey:             "secret",
				TokenValidityDuration: time.Hour,
				BcryptCost:            12,
				ShutdownTimeout:       5 * time.Second,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"cmd", "-c", "cfg.json", "-s", "k"},
			expected: &Config{
				SecretKey: "k",
			},
		},
		{
			name:        "non numeric validity",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
