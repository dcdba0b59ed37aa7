package config

import (
	"os"

	"cardtable/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the card table demo
type Config struct {
	loaded       bool
	Shuffle      bool  `yaml:"shuffle" envconfig:"shuffle"`
	PreviewCount int   `yaml:"previewCount" envconfig:"preview_count"`
	Seed         int64 `yaml:"seed" envconfig:"seed"`
	Log          struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is not an error; defaults and environment overrides
// still apply.
func Load() error {
	config = Config{
		PreviewCount: 5,
	}

	configFile := util.Getenv("CARDTABLE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardtable", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
