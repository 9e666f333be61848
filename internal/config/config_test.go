package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haze-32/tjk/internal/calendar"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/user/.tjk", Dir("/home/user"))
	assert.Equal(t, "/home/user/.tjk/config.json", Path("/home/user"))
}

func TestReadMissing(t *testing.T) {
	home := t.TempDir()

	cfg, err := Read(home)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"2025-04-15", "2025-06-20"}, cfg.Locks)
}

func TestRoundTrip(t *testing.T) {
	home := t.TempDir()

	original := &Config{
		Title:    "Gym",
		Start:    "2025-09-01",
		End:      "2025-12-19",
		Locks:    []string{"2025-10-13"},
		WeekMode: "calendar",
	}
	require.NoError(t, Write(home, original))

	loaded, err := Read(home)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestReadFillsDefaults(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(Path(home), []byte(`{"title": "Reading"}`), 0644))

	cfg, err := Read(home)
	require.NoError(t, err)
	assert.Equal(t, "Reading", cfg.Title)
	assert.Equal(t, "2025-03-11", cfg.Start)
	assert.Equal(t, "2025-06-26", cfg.End)
	assert.Len(t, cfg.Locks, 2)
	assert.Equal(t, "rolling", cfg.WeekMode)
}

func TestReadEmptyLocksDisablesLocking(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(Path(home), []byte(`{"locks": []}`), 0644))

	cfg, err := Read(home)
	require.NoError(t, err)
	assert.Empty(t, cfg.Locks)

	engine, err := cfg.Engine()
	require.NoError(t, err)
	assert.Zero(t, engine.Locks().Len())
}

func TestReadCorrupted(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(Dir(home), "config.json"), []byte("{"), 0644))

	_, err := Read(home)
	assert.ErrorContains(t, err, "parsing")
}

func TestEngine(t *testing.T) {
	engine, err := Default().Engine()
	require.NoError(t, err)

	assert.Equal(t, calendar.DefaultStart, engine.Start())
	assert.Equal(t, calendar.DefaultEnd, engine.End())
	assert.Equal(t, calendar.DefaultLocks().Dates(), engine.Locks().Dates())
	assert.Equal(t, calendar.WeekRolling, engine.WeekMode())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "default is valid", mutate: func(c *Config) {}},
		{name: "bad start", mutate: func(c *Config) { c.Start = "soon" }, wantErr: "start"},
		{name: "bad end", mutate: func(c *Config) { c.End = "2025-13-01" }, wantErr: "end"},
		{name: "bad lock", mutate: func(c *Config) { c.Locks = []string{"nope"} }, wantErr: "lock date"},
		{name: "bad week mode", mutate: func(c *Config) { c.WeekMode = "daily" }, wantErr: "week mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRemove(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, Remove(home), "missing file is fine")

	require.NoError(t, Write(home, Default()))
	require.NoError(t, Remove(home))
	_, err := os.Stat(Path(home))
	assert.True(t, os.IsNotExist(err))
}
