package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "courses.txt", cfg.Catalog.Path)
	assert.Equal(t, ',', cfg.CatalogDelimiter())
	assert.Equal(t, "My Schedule", cfg.Schedule.Title)
	assert.Equal(t, 15, cfg.Calendar.Weeks)
	assert.Equal(t, "info", cfg.Log.Level)

	week, err := cfg.FirstWeek()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, week.Weekday())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wolf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  path: /data/fall.txt
  delimiter: ";"
schedule:
  title: Fall 2026
calendar:
  week_of: "2026-08-17"
  weeks: 16
log:
  level: debug
`), 0o600))
	t.Setenv("WOLF_SCHEDULE_TITLE", "Spring 2027")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/fall.txt", cfg.Catalog.Path)
	assert.Equal(t, ';', cfg.CatalogDelimiter())
	assert.Equal(t, "Spring 2027", cfg.Schedule.Title)
	assert.Equal(t, 16, cfg.Calendar.Weeks)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ",", cfg.Report.Delimiter)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"long delimiter", "catalog:\n  delimiter: \"::\"\n"},
		{"too many weeks", "calendar:\n  weeks: 60\n"},
		{"bad date", "calendar:\n  week_of: 08/17/2026\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wolf.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Catalog, cfg.Catalog)
	assert.Equal(t, Default().Log, cfg.Log)
}

func TestExportPath(t *testing.T) {
	cfg := Default()
	cfg.Export.Dir = "/srv/out"
	assert.Equal(t, filepath.Join("/srv/out", "a.csv"), cfg.ExportPath("a.csv"))
	assert.Equal(t, "/tmp/b.csv", cfg.ExportPath("/tmp/b.csv"))
}

func TestMondayOf(t *testing.T) {
	sunday := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), mondayOf(sunday))
	monday := time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), mondayOf(monday))
}
