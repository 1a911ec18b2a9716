package config

import (
	"encoding/json"
	"fmt"

	"github.com/creasty/defaults"
)

// Config is the full configuration of a hermes instance: the serving
// surface plus the static webhook registrations it relays for.
type Config struct {
	Log       LogConfig        `yaml:"log" json:"log"`
	AccessLog AccessLogConfig  `yaml:"access_log" json:"access_log"`
	Proxy     ProxyConfig      `yaml:"proxy" json:"proxy"`
	Registers []RegisterConfig `yaml:"registers" json:"registers"`
	Settings  SettingsConfig   `yaml:"settings" json:"settings"`
}

func (cfg Config) String() string {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	if err := cfg.AccessLog.Validate(); err != nil {
		return err
	}
	if err := cfg.Proxy.Validate(); err != nil {
		return err
	}
	if err := cfg.Settings.Validate(); err != nil {
		return err
	}

	seen := make(map[string]int)
	for i, register := range cfg.Registers {
		if err := register.Validate(); err != nil {
			return fmt.Errorf("invalid register #%d: %s", i, err)
		}
		if j, ok := seen[register.Endpoint]; ok {
			return fmt.Errorf("duplicate endpoint '%s' in registers #%d and #%d", register.Endpoint, j, i)
		}
		seen[register.Endpoint] = i
	}

	return nil
}

func New() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}
