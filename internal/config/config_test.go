package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		runAddress string
		apiAddress string
		statePath  string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				runAddress: "localhost:8080",
				apiAddress: "http://localhost:3000",
				statePath:  "orderdesk-state.json",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"RUN_ADDRESS": "localhost:9999",
				"API_ADDRESS": "http://localhost:4000",
				"STATE_PATH":  "/tmp/state.json",
			},
			flags: []string{},
			want: want{
				runAddress: "localhost:9999",
				apiAddress: "http://localhost:4000",
				statePath:  "/tmp/state.json",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-a", "localhost:7777",
				"-r", "http://api:3000",
				"-s", "flag-state.json",
			},
			want: want{
				runAddress: "localhost:7777",
				apiAddress: "http://api:3000",
				statePath:  "flag-state.json",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS": "env:9000",
				"API_ADDRESS": "http://env:3000",
				"STATE_PATH":  "env-state.json",
			},
			flags: []string{
				"-a", "flag:8000",
				"-r", "http://flag:3000",
				"-s", "flag-state.json",
			},
			want: want{
				runAddress: "env:9000",
				apiAddress: "http://env:3000",
				statePath:  "env-state.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.apiAddress, cfg.APIAddress)
			assert.Equal(t, tt.want.statePath, cfg.StatePath)
		})
	}
}
