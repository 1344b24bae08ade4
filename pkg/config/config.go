package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	SAP    SAPConfig
	Wizard WizardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si
// no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string de PostgreSQL con URL encoding para
// caracteres especiales en la contraseña.
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

// RedisConfig configuración de Redis (caché de catálogo y listados de ventas).
// SaleListTTL es la caducidad de las páginas cacheadas del listado de ventas.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	SaleListTTL time.Duration
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SAPConfig configuración del cliente HTTP hacia el sistema logístico SAP.
type SAPConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// WizardConfig parámetros del asistente de alta.
//
// InternalCarrierID es el id explícito del operador propio en el catálogo de
// compañías (sustituye a la antigua convención posicional "la primera de la
// lista"). SessionTTL es la vida de un borrador sin actividad; CompanyTTL y
// CatalogTTL son las ventanas de caducidad de la caché de catálogo.
type WizardConfig struct {
	InternalCarrierID int64
	SessionTTL        time.Duration
	CompanyTTL        time.Duration
	CatalogTTL        time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env / config.env). Las env vars tienen prioridad.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "altas-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "altas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:        getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:    getString(v, "REDIS_PASSWORD", ""),
			DB:          getInt(v, "REDIS_DB", 0),
			SaleListTTL: time.Duration(getInt(v, "REDIS_SALE_LIST_TTL_MINUTES", 5)) * time.Minute,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "altas-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SAP: SAPConfig{
			BaseURL: getString(v, "SAP_BASE_URL", ""),
			APIKey:  getString(v, "SAP_API_KEY", ""),
			Timeout: time.Duration(getInt(v, "SAP_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Wizard: WizardConfig{
			InternalCarrierID: int64(getInt(v, "WIZARD_INTERNAL_CARRIER_ID", 1)),
			SessionTTL:        time.Duration(getInt(v, "WIZARD_SESSION_TTL_MINUTES", 60)) * time.Minute,
			CompanyTTL:        time.Duration(getInt(v, "WIZARD_COMPANY_TTL_HOURS", 24)) * time.Hour,
			CatalogTTL:        time.Duration(getInt(v, "WIZARD_CATALOG_TTL_MINUTES", 30)) * time.Minute,
		},
	}

	return cfg, nil
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
