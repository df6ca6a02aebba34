package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Session SessionConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// StorageConfig ubicación de los registros JSON y de los respaldos.
type StorageConfig struct {
	DataDir   string
	BackupDir string
}

// EmployeesDir directorio con un archivo <id>.json por funcionario.
func (c StorageConfig) EmployeesDir() string { return filepath.Join(c.DataDir, "employees") }

// AircraftDir directorio con un archivo <code>.json por aeronave.
func (c StorageConfig) AircraftDir() string { return filepath.Join(c.DataDir, "aircraft") }

// ReportsDir directorio de reportes de producción (.txt y .pdf).
func (c StorageConfig) ReportsDir() string { return filepath.Join(c.DataDir, "reports") }

// LockPath archivo de bloqueo de la sesión activa.
func (c StorageConfig) LockPath() string { return filepath.Join(c.DataDir, ".aerocode.lock") }

// SessionConfig configuración del token de sesión (JWT).
type SessionConfig struct {
	Secret     string
	TTLMinutes int
	Issuer     string
}

// AuthConfig parámetros de hash y del administrador inicial.
type AuthConfig struct {
	BcryptCost    int
	AdminUser     string
	AdminPassword string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "aerocode"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			DataDir:   getString(v, "DATA_DIR", "./data"),
			BackupDir: getString(v, "BACKUP_DIR", "./backups"),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 480),
			Issuer:     getString(v, "SESSION_ISSUER", "aerocode"),
		},
		Auth: AuthConfig{
			BcryptCost:    getInt(v, "BCRYPT_COST", 10),
			AdminUser:     getString(v, "DEFAULT_ADMIN_USER", "admin"),
			AdminPassword: getString(v, "DEFAULT_ADMIN_PASSWORD", "admin"),
		},
	}

	if cfg.Session.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generar secreto de sesión: %w", err)
		}
		cfg.Session.Secret = secret
	}
	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 480
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = 10
	}

	return cfg, nil
}

// EnsureDirs crea los directorios de datos; el store exige que existan antes de guardar.
func EnsureDirs(c StorageConfig) error {
	for _, dir := range []string{c.EmployeesDir(), c.AircraftDir(), c.ReportsDir(), c.BackupDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	return nil
}

// randomSecret secreto efímero: los tokens solo viven lo que dura el proceso.
func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
