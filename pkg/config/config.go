package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	Sim     SimConfig
	I18n    I18nConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig selecciona el adaptador de persistencia clave→valor.
// Driver: "file" (por defecto), "memory", "redis" o "postgres".
type StorageConfig struct {
	Driver        string
	Dir           string // driver file: directorio de documentos JSON
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string // driver postgres: connection string completo
}

// SimConfig latencia simulada de las operaciones de escritura y login.
// Cero en tests; distinto de cero solo para que la UI ejercite spinners.
type SimConfig struct {
	LatencyMS int
}

// Latency devuelve la latencia simulada como duración.
func (c SimConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// I18nConfig configuración de localización.
type I18nConfig struct {
	DefaultLocale string // "en" o "es"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventory-products-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventory-products-api"),
		},
		Storage: StorageConfig{
			Driver:        getString(v, "STORAGE_DRIVER", "file"),
			Dir:           getString(v, "STORAGE_DIR", "./data"),
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
			DatabaseURL:   getString(v, "DATABASE_URL", ""),
		},
		Sim: SimConfig{
			LatencyMS: getInt(v, "SIM_LATENCY_MS", 0),
		},
		I18n: I18nConfig{
			DefaultLocale: getString(v, "DEFAULT_LOCALE", "en"),
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
