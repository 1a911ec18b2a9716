package config

import (
	"errors"
)

type ProxyConfig struct {
	Listen             string `yaml:"listen" json:"listen" default:"0.0.0.0:3000"`
	TimeoutRead        int64  `yaml:"timeout_read" json:"timeout_read" default:"60"`
	TimeoutWrite       int64  `yaml:"timeout_write" json:"timeout_write" default:"60"`
	MaxRequestBodySize int64  `yaml:"max_request_body_size" json:"max_request_body_size" default:"1048576"`

	// RequestTimeout bounds every outbound forward unless the target
	// declares its own timeout_seconds.
	RequestTimeout int64 `yaml:"request_timeout" json:"request_timeout" default:"30"`

	// MaxConcurrentRequests is accepted for compatibility; the dispatch
	// path does not enforce it.
	MaxConcurrentRequests int64 `yaml:"max_concurrent_requests" json:"max_concurrent_requests" default:"1000"`

	HealthCheck bool `yaml:"health_check" json:"health_check" default:"true"`
}

func (cfg ProxyConfig) Validate() error {
	if cfg.Listen == "" {
		return errors.New("listen is required")
	}
	if cfg.TimeoutRead < 0 {
		return errors.New("timeout_read cannot be negative value")
	}
	if cfg.TimeoutWrite < 0 {
		return errors.New("timeout_write cannot be negative value")
	}
	if cfg.MaxRequestBodySize < 0 {
		return errors.New("max_request_body_size cannot be negative value")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("request_timeout must be a positive value")
	}
	if cfg.MaxConcurrentRequests < 0 {
		return errors.New("max_concurrent_requests cannot be negative value")
	}
	return nil
}
