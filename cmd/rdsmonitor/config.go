package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file read at startup, in the
// style of the pack's bkram/uecprds RDS tooling -- grouped by concern
// rather than flattened.
type Config struct {
	Serial struct {
		Port     string `yaml:"port"`
		BaudRate int    `yaml:"baud_rate"`
	} `yaml:"serial"`

	Station struct {
		RBDS bool `yaml:"rbds"`
	} `yaml:"station"`

	Display struct {
		RefreshInterval time.Duration `yaml:"refresh_interval"`
		TimeFormat      string        `yaml:"time_format"`
	} `yaml:"display"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Serial.Port = "/dev/ttyUSB0"
	cfg.Serial.BaudRate = 9600
	cfg.Display.RefreshInterval = time.Second
	cfg.Display.TimeFormat = "%Y-%m-%d %H:%M:%S %Z"
	return cfg
}

// loadConfig reads and parses the YAML config at path, falling back to
// defaultConfig's values for anything the file leaves unset.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("rdsmonitor: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("rdsmonitor: parse config: %w", err)
	}
	return cfg, nil
}
