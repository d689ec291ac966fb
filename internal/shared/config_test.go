package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Spotify.BaseURL != "https://api.spotify.com/v1" {
			t.Errorf("expected spotify base URL https://api.spotify.com/v1, got %s", config.Spotify.BaseURL)
		}

		if config.Store.Backend != "sqlite" {
			t.Errorf("expected store backend sqlite, got %s", config.Store.Backend)
		}

		if config.Rooms.CodeLength != 6 {
			t.Errorf("expected room code length 6, got %d", config.Rooms.CodeLength)
		}

		if config.Rooms.PlaylistPrefix != "PartyDJ" {
			t.Errorf("expected playlist prefix PartyDJ, got %s", config.Rooms.PlaylistPrefix)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Store.SQLite.Path != defaultConfig.Store.SQLite.Path {
			t.Errorf("created config sqlite path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[server]
host = "0.0.0.0"
port = 9000

[spotify]
base_url = "http://localhost:4000"
rate_limit = 2.5

[store]
backend = "redis"

[store.redis]
addr = "localhost:6379"
db = 3

[rooms]
code_length = 8
playlist_prefix = "Jukebox"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Port != 9000 {
			t.Errorf("expected port 9000, got %d", config.Server.Port)
		}
		if config.Spotify.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %f", config.Spotify.RateLimit)
		}
		if config.Store.Backend != "redis" {
			t.Errorf("expected backend redis, got %s", config.Store.Backend)
		}
		if config.Store.Redis.DB != 3 {
			t.Errorf("expected redis db 3, got %d", config.Store.Redis.DB)
		}
		if config.Rooms.CodeLength != 8 {
			t.Errorf("expected code length 8, got %d", config.Rooms.CodeLength)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("LoadConfig Invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("this is not toml ["), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
