package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`
	LogFile   string  `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Console   Console `yaml:"console"`
}

type Console struct {
	NoColor     bool `yaml:"no-color" env:"CONSOLE_NO_COLOR"`
	ClearScreen bool `yaml:"clear-screen" env:"CONSOLE_CLEAR_SCREEN"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is not an error: defaults and environment variables are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}
