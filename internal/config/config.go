// Package config resolves runtime settings from defaults, an optional
// praise-board.{json,yaml,toml} file, a .env file and PRAISEBOARD_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "PRAISEBOARD"

type Config struct {
	NamesFile       string  `mapstructure:"names_file" validate:"required"`
	PreferencesFile string  `mapstructure:"preferences_file" validate:"required"`
	LocalesDir      string  `mapstructure:"locales_dir" validate:"required"`
	LogLevel        string  `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogJSON         bool    `mapstructure:"log_json"`
	WatchLocales    bool    `mapstructure:"watch_locales"`
	WindowWidth     float32 `mapstructure:"window_width" validate:"gte=640"`
	WindowHeight    float32 `mapstructure:"window_height" validate:"gte=480"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("names_file", "students_name.txt")
	v.SetDefault("preferences_file", "preferences.json")
	v.SetDefault("locales_dir", "locales")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("watch_locales", true)
	v.SetDefault("window_width", 1280)
	v.SetDefault("window_height", 800)
}

// Load reads configuration. dir is searched for the optional config and .env
// files; an empty dir means the working directory.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	dotEnv := dir + string(os.PathSeparator) + ".env"
	if _, err := os.Stat(dotEnv); err == nil {
		if err := godotenv.Load(dotEnv); err != nil {
			return nil, fmt.Errorf("load %s: %w", dotEnv, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", dotEnv, err)
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	setDefaults(v)

	v.SetConfigName("praise-board")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
