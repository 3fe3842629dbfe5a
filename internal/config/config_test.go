package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "localhost"
user = "scheduler"
password = "secret"
dbname = "scheduling"

[logs]
level = "debug"

[booking]
guard_mode = "buffered"

[cors]
allowed_origins = ["http://localhost:3000"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int64(1), cfg.Host.ID)
	assert.Equal(t, "buffered", cfg.Booking.GuardMode)
	assert.Equal(t, "@every 5m", cfg.Reminders.Schedule)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t,
		"host=localhost port=5432 user=scheduler password=secret dbname=scheduling sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HOST_ID", "42")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, int64(42), cfg.Host.ID)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		extra string
	}{
		{name: "unknown guard mode", extra: "\n[booking]\nguard_mode = \"strict\"\n"},
		{name: "unknown mail provider", extra: "\n[mail]\nprovider = \"pigeon\"\n"},
		{name: "mailersend without key", extra: "\n[mail]\nprovider = \"mailersend\"\nfrom_email = \"a@b.c\"\n"},
		{name: "nats without url", extra: "\n[nats]\nenabled = true\n"},
	}

	base := `
[database]
host = "localhost"
dbname = "scheduling"
`

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, base+tc.extra))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrLoad)
}
