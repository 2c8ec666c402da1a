package command

import (
	"bytes"
	"detailcrm/flatfile"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := rootCmd.Execute()
	return out.String(), err
}

func useDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("PERSIST", "true")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("JWT_SECRET", "")
	return dir
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "hash-password", "hunter22")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))

	_, err = run(t, "hash-password")
	assert.Error(t, err)
}

func TestSecret(t *testing.T) {
	out, err := run(t, "secret")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 44)
}

func TestSeedAndBackup(t *testing.T) {
	dir := useDataDir(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Equal(t, "2 customers, 2 appointments, 2 invoices\n", out)

	for _, kind := range flatfile.Kinds {
		assert.FileExists(t, filepath.Join(dir, kind.FileName()))
	}

	out, err = run(t, "backup", "--suffix", "before-upgrade")
	require.NoError(t, err)
	assert.Equal(t, "before-upgrade\n", out)
	orig, err := os.ReadFile(filepath.Join(dir, "customers.txt"))
	require.NoError(t, err)
	copied, err := os.ReadFile(filepath.Join(dir, "customers.txt.before-upgrade"))
	require.NoError(t, err)
	assert.Equal(t, orig, copied)
}

func TestRemindRequiresTwilio(t *testing.T) {
	useDataDir(t)
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_PHONE_NUMBER", "")
	_, err := run(t, "remind")
	assert.Error(t, err)
}

func TestMirrorRequiresDatabase(t *testing.T) {
	useDataDir(t)
	t.Setenv("DB_URL", "")
	_, err := run(t, "mirror")
	assert.Error(t, err)
}
