package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Storage   StorageConfig
	Metrics   MetricsConfig
	Migration MigrationConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env              string // development, staging, production
	Name             string
	LogLevel         string
	DefaultCompanyID string // empresa usada cuando el token no trae una seleccionada
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
	BodyLimitMB int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig define dónde se guardan las firmas escaneadas.
type StorageConfig struct {
	Backend         string // local | gcs
	LocalDir        string
	GCSBucket       string
	GCSPrefix       string
	CredentialsFile string
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// MigrationConfig controla las migraciones embebidas.
type MigrationConfig struct {
	AutoRun bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, STORAGE_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

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
			Env:              getString(v, "APP_ENV", "development"),
			Name:             getString(v, "APP_NAME", "bill-automation"),
			LogLevel:         getString(v, "LOG_LEVEL", "info"),
			DefaultCompanyID: getString(v, "DEFAULT_COMPANY_ID", "northWestLogistics"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "bill_automation"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 10),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "bill-automation"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 5000),
			CORSOrigins: getString(v, "CORS_ORIGINS", "http://localhost:3000"),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 8),
		},
		Storage: StorageConfig{
			Backend:         getString(v, "STORAGE_BACKEND", "local"),
			LocalDir:        getString(v, "STORAGE_LOCAL_DIR", "uploads"),
			GCSBucket:       getString(v, "GCS_BUCKET", ""),
			GCSPrefix:       getString(v, "GCS_PREFIX", "signatures"),
			CredentialsFile: getString(v, "GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		Metrics: MetricsConfig{
			Enabled:   getBool(v, "METRICS_ENABLED", true),
			Namespace: getString(v, "METRICS_NAMESPACE", "bill_automation"),
		},
		Migration: MigrationConfig{
			AutoRun: getBool(v, "DB_AUTO_MIGRATE", true),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "local":
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("config: STORAGE_LOCAL_DIR requerido para backend local")
		}
	case "gcs":
		if c.Storage.GCSBucket == "" {
			return fmt.Errorf("config: GCS_BUCKET requerido para backend gcs")
		}
	default:
		return fmt.Errorf("config: STORAGE_BACKEND desconocido %q", c.Storage.Backend)
	}
	return nil
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
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
