package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aouyang1/photogallery/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeoutDuration())
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeoutDuration())
	assert.Equal(t, "./photos", cfg.Gallery.Dir)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif"}, cfg.Gallery.Extensions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "", cfg.Remote.Bucket)
	assert.False(t, cfg.Remote.Prune)
	assert.Equal(t, 30*time.Minute, cfg.Remote.TimeoutDuration())
	assert.Equal(t, "http://localhost:8080", cfg.Client.Server)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gallery.yaml")

	configContent := `
server:
  addr: 127.0.0.1:5000
gallery:
  dir: /srv/photos
  extensions: [jpg, webp]
log:
  level: debug
  format: json
remote:
  bucket: family-photos
  prefix: 2024/
  prune: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := config.Load(configPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Addr)
	assert.Equal(t, "/srv/photos", cfg.Gallery.Dir)
	assert.Equal(t, []string{"jpg", "webp"}, cfg.Gallery.Extensions)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "family-photos", cfg.Remote.Bucket)
	assert.Equal(t, "2024/", cfg.Remote.Prefix)
	assert.True(t, cfg.Remote.Prune)

	gc := cfg.GalleryConfig()
	assert.Equal(t, "/srv/photos", gc.Dir)
	assert.ElementsMatch(t, []string{"jpg", "webp"}, gc.Extensions.ToSlice())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GALLERY_GALLERY_DIR", "/data/pictures")
	t.Setenv("GALLERY_LOG_LEVEL", "warn")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "/data/pictures", cfg.Gallery.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GALLERY_GALLERY_DIR", "/from/env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dir", "", "")
	flags.String("addr", "", "")
	require.NoError(t, flags.Parse([]string{"--dir", "/from/flag"}))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.Gallery.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr, "unset flags keep the default")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"empty dir", "gallery:\n  dir: \"\"\n"},
		{"bad client url", "client:\n  server: not a url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := config.Load(path, nil)
			assert.Error(t, err)
		})
	}
}
