package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-u", "alice", "-H", "db.local"},
			allowedFlags: []string{"-u", "-p"},
			want:         []string{"-u", "alice"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-u=alice", "-H", "db.local"},
			allowedFlags: []string{"-u"},
			want:         []string{"-u=alice"},
		},
		{
			name:         "boolean flag followed by another flag",
			args:         []string{"-l", "-H", "db.local"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l"},
		},
		{
			name:         "multiple allowed flags preserve order",
			args:         []string{"-u", "alice", "-p", "secret123", "-d"},
			allowedFlags: []string{"-u", "-p", "-d"},
			want:         []string{"-u", "alice", "-p", "secret123", "-d"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-u"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-u"},
			allowedFlags: []string{"-u"},
			want:         []string{"-u"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}
