package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/synbuild/log"
)

// TestLogConfig_Scan verifies logger flags are picked out of raw arguments.
// It reconfigures the process-wide logger and must not run in parallel.
func TestLogConfig_Scan(t *testing.T) {
	original := log.Default()
	t.Cleanup(func() { log.SetDefault(original) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate_values",
			args: []string{"--log-level", "debug", "--log-format", "json", "eval"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "assigned_values",
			args: []string{"eval", "--log-level=warn", "--log-time-layout=none"},
			want: logConfig{Level: "warn", TimeLayout: "none", Pretty: true},
		},
		{
			name: "booleans",
			args: []string{"--log-caller", "--no-log-pretty"},
			want: logConfig{Caller: true},
		},
		{
			name: "assigned_booleans",
			args: []string{"--log-caller=false", "--no-log-pretty=false", "--log-caller=maybe"},
			want: logConfig{Pretty: true},
		},
		{
			name: "value_missing",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "unrelated",
			args: []string{"-e", "--log-level", "--logx", "--no-log-level=x"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			assert.Equal(t, tt.want, f)
		})
	}
}
