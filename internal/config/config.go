package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Debug    bool   `yaml:"debug" env:"DEBUG" env-default:"false"`
	Render   Render `yaml:"render"`
	AI       AI     `yaml:"ai"`
}

type Render struct {
	NoColor bool `yaml:"no-color" env:"RENDER_NO_COLOR" env-default:"false"`
}

type AI struct {
	// Seed for the bot's random source. Zero means seed from the clock.
	Seed int64 `yaml:"seed" env:"AI_SEED" env-default:"0"`
}

// Load reads the config file at path. Without a file, settings come from the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
