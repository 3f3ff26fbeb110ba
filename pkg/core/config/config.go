// Package config holds the server configuration read from config/server.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Server is the API server configuration.
type Server struct {
	Port         int    `yaml:"port"`
	AllowOrigin  string `yaml:"allow_origin"`
	ReadTimeout  int    `yaml:"read_timeout_seconds"`
	WriteTimeout int    `yaml:"write_timeout_seconds"`
}

// Default returns the configuration used when no file is present.
func Default() Server {
	return Server{
		Port:         8080,
		AllowOrigin:  "*",
		ReadTimeout:  15,
		WriteTimeout: 15,
	}
}

// Load reads a yaml config file, filling unset fields from Default. A
// missing file is not an error; it yields the defaults.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Port <= 0 {
		cfg.Port = Default().Port
	}
	return cfg, nil
}
