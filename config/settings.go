package config

import (
	"errors"
)

// SettingsConfig carries process-wide defaults for rules that do not
// declare their own.
type SettingsConfig struct {
	RetryAttempts int   `yaml:"retry_attempts" json:"retry_attempts" default:"3"`
	RetryDelayMS  int64 `yaml:"retry_delay_ms" json:"retry_delay_ms" default:"1000"`
	EnableMetrics bool  `yaml:"enable_metrics" json:"enable_metrics"`
}

func (cfg SettingsConfig) Validate() error {
	if cfg.RetryAttempts < 0 {
		return errors.New("retry_attempts cannot be negative value")
	}
	if cfg.RetryDelayMS < 0 {
		return errors.New("retry_delay_ms cannot be negative value")
	}
	return nil
}
