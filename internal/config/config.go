package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/nttt/pkg/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"NTTT_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Size     int    `yaml:"size" env:"NTTT_GAME_SIZE" env-default:"3"`
	Starting string `yaml:"starting" env:"NTTT_GAME_STARTING" env-default:"x"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, applying environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Game) GetStartingToken() (entity.Token, error) {
	token, err := entity.ParseToken(that.Starting)
	if err != nil {
		return "", fmt.Errorf("invalid starting token: %w", err)
	}

	return token, nil
}
