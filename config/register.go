package config

import (
	"github.com/hermes-io/hermes/utils"
)

// RegisterConfig binds an inbound endpoint path to an outbound target and
// a transformation template.
type RegisterConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint" validate:"required,startswith=/"`
	// Method declares the HTTP method the rule expects. It is
	// informational: the dispatcher accepts any inbound method.
	Method   string       `yaml:"method" json:"method"`
	Target   TargetConfig `yaml:"target" json:"target"`
	Template string       `yaml:"template" json:"template" validate:"required"`
	Retry    *RetryConfig `yaml:"retry_config" json:"retry_config"`
}

func (cfg RegisterConfig) Validate() error {
	return utils.Validate(cfg)
}

type TargetConfig struct {
	URL string `yaml:"url" json:"url" validate:"required,url"`
	// Method is matched against the supported verb set at dispatch time;
	// an unsupported value is a per-request configuration fault.
	Method  string            `yaml:"method" json:"method" validate:"required"`
	Headers map[string]string `yaml:"headers" json:"headers"`
	// TimeoutSeconds overrides proxy.request_timeout for this target.
	TimeoutSeconds int64 `yaml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
}

type RetryConfig struct {
	Attempts          int     `yaml:"attempts" json:"attempts" validate:"gte=1"`
	DelayMS           int64   `yaml:"delay_ms" json:"delay_ms" validate:"gte=0"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" validate:"gte=1"`
}
