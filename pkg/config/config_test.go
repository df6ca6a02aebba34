package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aerocode/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "aerocode", cfg.App.Name)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, "./backups", cfg.Storage.BackupDir)
	assert.Equal(t, 480, cfg.Session.TTLMinutes)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "admin", cfg.Auth.AdminUser)
	assert.Len(t, cfg.Session.Secret, 64, "sin SESSION_SECRET se genera un secreto aleatorio")
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATA_DIR", "/var/lib/aerocode")
	t.Setenv("SESSION_SECRET", "s3cr3t")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/var/lib/aerocode", cfg.Storage.DataDir)
	assert.Equal(t, "s3cr3t", cfg.Session.Secret)
	assert.Equal(t, 15, cfg.Session.TTLMinutes)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, filepath.Join("/var/lib/aerocode", "aircraft"), cfg.Storage.AircraftDir())
}

func TestLoad_EnteroInvalidoUsaDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SESSION_TTL_MINUTES", "mucho")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Session.TTLMinutes)
}

func TestEnsureDirs_CreaEstructura(t *testing.T) {
	root := t.TempDir()
	storage := config.StorageConfig{
		DataDir:   filepath.Join(root, "data"),
		BackupDir: filepath.Join(root, "backups"),
	}

	require.NoError(t, config.EnsureDirs(storage))

	for _, dir := range []string{storage.EmployeesDir(), storage.AircraftDir(), storage.ReportsDir(), storage.BackupDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
