package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "booking"
user = "booking"
password = "booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 9, cfg.Schedule.DayStartHour)
	assert.Equal(t, 18, cfg.Schedule.DayEndHour)
	assert.Equal(t, "@hourly", cfg.Schedule.SweepSpec)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
dbname = "booking"
user = "svc"
password = "secret"
sslmode = "require"

[schedule]
day_start_hour = 8
day_end_hour = 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=secret dbname=booking sslmode=require",
		cfg.Database.DSN())
	assert.Len(t, cfg.Schedule.WorkDay().Slots(), 12)
}

func TestLoadRejectsBadWindow(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "booking"

[schedule]
day_start_hour = 18
day_end_hour = 9
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingDBName(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}
