package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"host": "0.0.0.0",
		"reveal_delay_ms": 500,
		"allowed_origins": ["http://localhost:5173"],
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 500, cfg.RevealDelayMS)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(`{}`), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "existing profile", cfg: Config{Profile: profilePath}},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "negative delay", cfg: Config{RevealDelayMS: -5}, wantErr: "'reveal_delay_ms'"},
		{name: "blank origin", cfg: Config{AllowedOrigins: []string{" "}}, wantErr: "'allowed_origins'"},
		{name: "missing profile", cfg: Config{Profile: "/nonexistent/profile.json"}, wantErr: "profile file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9000, Verbose: true}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port, "explicit values win")
	assert.Equal(t, DefaultHost, merged.Host)
	assert.Equal(t, DefaultRevealDelayMS, merged.RevealDelayMS)
	assert.NotEmpty(t, merged.AllowedOrigins)
	assert.True(t, merged.Verbose)
	assert.Equal(t, 0, cfg.RevealDelayMS, "receiver is not modified")
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1"}
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, "127.0.0.1", merged.Host)
	assert.Equal(t, 0, merged.Port)
	assert.Empty(t, merged.AllowedOrigins)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SKILLSYNC_PORT", "7070")
	t.Setenv("SKILLSYNC_HOST", "0.0.0.0")
	t.Setenv("SKILLSYNC_REVEAL_DELAY_MS", "not-a-number")
	t.Setenv("SKILLSYNC_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, DefaultRevealDelayMS, cfg.RevealDelayMS, "unparsable values are ignored")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:7070", cfg.Addr())
}

func TestRevealDelay(t *testing.T) {
	cfg := Config{RevealDelayMS: 1500}
	assert.Equal(t, 1500*time.Millisecond, cfg.RevealDelay())
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"port": 8080, "colour": "blue"}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation failed")
}
