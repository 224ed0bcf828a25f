package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App    AppConfig
	Tienda TiendaConfig
	Log    LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// TiendaConfig identidad de la tienda y parámetros del almacén en memoria.
type TiendaConfig struct {
	Name            string // nombre que encabeza el menú
	TaxID           string // RIF de la tienda
	InitialCapacity int    // capacidad inicial de cada colección
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, TIENDA_NOMBRE, TIENDA_RIF, TIENDA_CAPACIDAD, LOG_LEVEL.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario"),
		},
		Tienda: TiendaConfig{
			Name:            getString(v, "TIENDA_NOMBRE", "Mi Tienda"),
			TaxID:           getString(v, "TIENDA_RIF", ""),
			InitialCapacity: getInt(v, "TIENDA_CAPACIDAD", 5),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
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
