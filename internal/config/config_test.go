package config

import (
	"testing"
	"time"

	"github.com/KirkDiggler/pathtracker/internal/domain/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Mirrors)
	assert.Equal(t, "auto.save", cfg.Storage.SaveKey)
	assert.Equal(t, ".", cfg.Storage.SaveDir)
	assert.Equal(t, "tracker.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, time.Duration(0), cfg.Redis.TTL)
	assert.Equal(t, 128, cfg.Tracker.UndoSize)
	assert.Equal(t, character.TieBreakFoesFirst, cfg.Tracker.TieBreak)
	assert.Empty(t, cfg.Telemetry.Endpoint)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TRACKER_STORAGE_BACKEND", "redis")
	t.Setenv("TRACKER_STORAGE_MIRRORS", "file,sqlite")
	t.Setenv("TRACKER_SAVE_KEY", "session-4")
	t.Setenv("TRACKER_REDIS_TTL", "72h")
	t.Setenv("TRACKER_UNDO_SIZE", "10")
	t.Setenv("TRACKER_TIE_BREAK", "players_first")
	t.Setenv("TRACKER_OTEL_ENDPOINT", "http://localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, []Backend{BackendFile, BackendSQLite}, cfg.Storage.Mirrors)
	assert.Equal(t, "session-4", cfg.Storage.SaveKey)
	assert.Equal(t, 72*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 10, cfg.Tracker.Settings().UndoSize)
	assert.Equal(t, character.TieBreakPlayersFirst, cfg.Tracker.Settings().TieBreak)
	assert.Equal(t, "http://localhost:4318", cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Storage.Uses(BackendSQLite))
	assert.False(t, cfg.Storage.Uses(BackendPostgres))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"TRACKER_STORAGE_BACKEND": "s3"}},
		{name: "unknown mirror", env: map[string]string{"TRACKER_STORAGE_MIRRORS": "tape"}},
		{name: "mirror repeats primary", env: map[string]string{"TRACKER_STORAGE_MIRRORS": "file"}},
		{name: "postgres without dsn", env: map[string]string{"TRACKER_STORAGE_BACKEND": "postgres"}},
		{name: "bad tie break", env: map[string]string{"TRACKER_TIE_BREAK": "coin_flip"}},
		{name: "negative undo size", env: map[string]string{"TRACKER_UNDO_SIZE": "-1"}},
		{name: "undo size not a number", env: map[string]string{"TRACKER_UNDO_SIZE": "lots"}},
		{name: "blank save key", env: map[string]string{"TRACKER_SAVE_KEY": " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
