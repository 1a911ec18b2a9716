package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogConfig(t *testing.T) {
	tests := []struct {
		desc                string
		cfg                 LogConfig
		expectedValidateErr error
	}{
		{
			desc: "sanity",
			cfg: LogConfig{
				Level:  LogLevelInfo,
				Format: LogFormatText,
			},
			expectedValidateErr: nil,
		},
		{
			desc: "invalid level",
			cfg: LogConfig{
				Level:  "x",
				Format: LogFormatText,
			},
			expectedValidateErr: errors.New("invalid level: x"),
		},
		{
			desc: "invalid format",
			cfg: LogConfig{
				Level:  "info",
				Format: "x",
			},
			expectedValidateErr: errors.New("invalid format: x"),
		},
	}
	for _, test := range tests {
		actualValidateErr := test.cfg.Validate()
		assert.Equal(t, test.expectedValidateErr, actualValidateErr, "expected %v got %v", test.expectedValidateErr, actualValidateErr)
	}
}

func TestProxyConfig(t *testing.T) {
	tests := []struct {
		desc                string
		cfg                 ProxyConfig
		expectedValidateErr error
	}{
		{
			desc: "sanity",
			cfg: ProxyConfig{
				Listen:         "0.0.0.0:3000",
				RequestTimeout: 30,
			},
			expectedValidateErr: nil,
		},
		{
			desc: "max_request_body_size cannot be negative value",
			cfg: ProxyConfig{
				Listen:             "0.0.0.0:3000",
				RequestTimeout:     30,
				MaxRequestBodySize: -1,
			},
			expectedValidateErr: errors.New("max_request_body_size cannot be negative value"),
		},
		{
			desc: "request_timeout must be a positive value",
			cfg: ProxyConfig{
				Listen: "0.0.0.0:3000",
			},
			expectedValidateErr: errors.New("request_timeout must be a positive value"),
		},
	}
	for _, test := range tests {
		actualValidateErr := test.cfg.Validate()
		assert.Equal(t, test.expectedValidateErr, actualValidateErr, "expected %v got %v", test.expectedValidateErr, actualValidateErr)
	}
}

func TestRegisterConfig(t *testing.T) {
	valid := RegisterConfig{
		Endpoint: "/webhook",
		Method:   "POST",
		Target: TargetConfig{
			URL:    "https://example.com/hook",
			Method: "POST",
		},
		Template: `{"x": "{{y}}"}`,
	}

	t.Run("sanity", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("endpoint must start with /", func(t *testing.T) {
		cfg := valid
		cfg.Endpoint = "webhook"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must start with '/'")
	})

	t.Run("endpoint is required", func(t *testing.T) {
		cfg := valid
		cfg.Endpoint = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("target url is required", func(t *testing.T) {
		cfg := valid
		cfg.Target.URL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("target url must be absolute", func(t *testing.T) {
		cfg := valid
		cfg.Target.URL = "not a url"
		assert.Error(t, cfg.Validate())
	})

	t.Run("template is required", func(t *testing.T) {
		cfg := valid
		cfg.Template = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("retry config bounds", func(t *testing.T) {
		cfg := valid
		cfg.Retry = &RetryConfig{Attempts: 0, DelayMS: 100, BackoffMultiplier: 2}
		assert.Error(t, cfg.Validate())

		cfg.Retry = &RetryConfig{Attempts: 3, DelayMS: 100, BackoffMultiplier: 2}
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfigDuplicateEndpoints(t *testing.T) {
	cfg := New()
	register := RegisterConfig{
		Endpoint: "/webhook",
		Method:   "POST",
		Target: TargetConfig{
			URL:    "https://example.com/hook",
			Method: "POST",
		},
		Template: `{"x": 1}`,
	}
	cfg.Registers = []RegisterConfig{register, register}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate endpoint '/webhook'")
}

func TestConfigDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "0.0.0.0:3000", cfg.Proxy.Listen)
	assert.Equal(t, int64(30), cfg.Proxy.RequestTimeout)
	assert.Equal(t, int64(1048576), cfg.Proxy.MaxRequestBodySize)
	assert.Equal(t, int64(1000), cfg.Proxy.MaxConcurrentRequests)
	assert.True(t, cfg.Proxy.HealthCheck)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
	assert.Equal(t, 3, cfg.Settings.RetryAttempts)
	assert.Equal(t, int64(1000), cfg.Settings.RetryDelayMS)
	assert.False(t, cfg.Settings.EnableMetrics)
	assert.NoError(t, cfg.Validate())
}
