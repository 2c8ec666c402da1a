package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"DATA_DIR", "PERSIST", "PORT", "LOG_LEVEL", "LOG_FORMAT", "JWT_SECRET",
	"JWT_EXPIRY_HOURS", "OWNER_EMAIL", "OWNER_PASSWORD_HASH", "CORS_ORIGINS",
	"SAMPLE_DATA", "REMINDERS_ENABLED", "REMINDER_SCHEDULE", "BACKUP_SCHEDULE", "REMINDER_TEMPLATE",
	"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER",
	"TWILIO_WHATSAPP_NUMBER", "DB_URL",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.True(t, cfg.Persist)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry())
	assert.Equal(t, "0 9 * * *", cfg.ReminderSchedule)
	assert.Equal(t, "0 2 * * *", cfg.BackupSchedule)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.TwilioConfigured())
	assert.False(t, cfg.SampleData)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/var/lib/detailcrm")
	t.Setenv("PERSIST", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550000000")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/detailcrm", cfg.DataDir)
	assert.False(t, cfg.Persist)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.TwilioConfigured())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nSAMPLE_DATA=true\n"), 0o600))
	t.Setenv("SAMPLE_DATA", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.SampleData, "the environment wins over the file")
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("JWT_EXPIRY_HOURS", "0")
	_, err = Load(missingEnvFile(t))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	_, err = Load(missingEnvFile(t))
	assert.Error(t, err, "JWT_SECRET needs owner credentials")
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log, err = NewLogger("warn", "")
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	_, err = NewLogger("loud", "text")
	assert.Error(t, err)
	_, err = NewLogger("info", "xml")
	assert.Error(t, err)
}
