package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

var (
	// fileCfg is the config that is loaded from the testdata/config.yml file.
	fileCfg = &Config{
		Output:   OutputConfig{Format: FormatYAML},
		Validate: ValidateConfig{Pad: "right", Signed: true},
		Log:      LogConfig{Level: "debug"},
	}

	envVars = map[string]string{
		"HEXTYPES_OUTPUT_FORMAT":   "JSON",
		"HEXTYPES_VALIDATE_PAD":    "left",
		"HEXTYPES_VALIDATE_SIGNED": "false",
		"HEXTYPES_LOG_LEVEL":       "info",
	}

	legacyEnvVars = map[string]string{
		"HEXTYPES_OUTPUT":          "json",
		"HEXTYPES_PAD":             "left",
		"HEXTYPES_VALIDATE_SIGNED": "false",
		"HEXTYPES_LOG_LEVEL":       "info",
	}

	// envCfg is the config that is loaded from the environment variables.
	envCfg = &Config{
		Output:   OutputConfig{Format: FormatJSON},
		Validate: ValidateConfig{Pad: "left", Signed: false},
		Log:      LogConfig{Level: "info"},
	}
)

func Test_Load(t *testing.T) { //nolint:paralleltest // t.Setenv is not compatible with t.Parallel
	tests := []struct {
		name     string
		env      map[string]string
		givePath string
		want     *Config
		wantErr  string
	}{
		{
			name:     "load from file",
			givePath: "./testdata/config.yml",
			want:     fileCfg,
		},
		{
			name:     "load from toml file",
			givePath: "./testdata/config.toml",
			want: &Config{
				Output:   OutputConfig{Format: FormatTOML},
				Validate: ValidateConfig{Pad: "left"},
				Log:      LogConfig{Level: "error"},
			},
		},
		{
			name:     "load from empty file uses defaults",
			givePath: "./testdata/empty.yml",
			want:     Default(),
		},
		{
			name:     "no path uses defaults",
			givePath: "",
			want:     Default(),
		},
		{
			name:     "override with env",
			env:      envVars,
			givePath: "./testdata/config.yml",
			want:     envCfg,
		},
		{
			name:     "override with legacy env",
			env:      legacyEnvVars,
			givePath: "./testdata/config.yml",
			want:     envCfg,
		},
		{
			name:     "fallback to env when file not found",
			env:      envVars,
			givePath: "./testdata/invalid.yml",
			want:     envCfg,
		},
		{
			name:     "invalid format",
			givePath: "./testdata/bad_format.yml",
			wantErr:  "invalid output format \"xml\"",
		},
		{
			name:     "invalid pad from env",
			env:      map[string]string{"HEXTYPES_PAD": "middle"},
			givePath: "./testdata/empty.yml",
			wantErr:  "unknown pad direction",
		},
		{
			name:     "invalid log level from env",
			env:      map[string]string{"HEXTYPES_LOG_LEVEL": "loud"},
			givePath: "",
			wantErr:  "invalid log level",
		},
	}

	for _, tt := range tests { //nolint:paralleltest // t.Setenv is not compatible with t.Parallel
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load(tt.givePath)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_LoadFile(t *testing.T) {
	t.Parallel()

	got, err := LoadFile("./testdata/config.yml")
	require.NoError(t, err)
	assert.Equal(t, fileCfg, got)

	_, err = LoadFile("./testdata/invalid.yml")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no such file or directory")
}

func Test_LoadEnv(t *testing.T) { //nolint:paralleltest // t.Setenv is not compatible with t.Parallel
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	got, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, envCfg, got)
}

func TestConfig_Accessors(t *testing.T) {
	t.Parallel()

	pad, err := fileCfg.PadDirection()
	require.NoError(t, err)
	assert.Equal(t, hexval.PadRight, pad)

	lvl, err := fileCfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	lvl, err = Default().LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)
}
