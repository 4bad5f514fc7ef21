package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionals(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		flagsTakingValue []string
		want             []string
	}{
		{
			name:             "command after flags",
			args:             []string{"-a", "http://db:8000", "-u", "admin", "databases"},
			flagsTakingValue: []string{"-a", "-u"},
			want:             []string{"databases"},
		},
		{
			name:             "command with args",
			args:             []string{"check", "schema.tql", "q1.tql"},
			flagsTakingValue: []string{"-a"},
			want:             []string{"check", "schema.tql", "q1.tql"},
		},
		{
			name:             "equals form needs no listing",
			args:             []string{"--config=cfg.json", "query", "q.tql"},
			flagsTakingValue: nil,
			want:             []string{"query", "q.tql"},
		},
		{
			name:             "flags interleaved",
			args:             []string{"schema", "-d", "orders"},
			flagsTakingValue: []string{"-d"},
			want:             []string{"schema"},
		},
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positionals(tt.args, tt.flagsTakingValue))
		})
	}
}
