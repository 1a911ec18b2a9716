// Package dispatcher holds the endpoint registry: the immutable,
// process-lifetime mapping from inbound path to compiled webhook rule.
package dispatcher

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/hermes-io/hermes/config"
	"github.com/hermes-io/hermes/pkg/template"
)

type Registry struct {
	rules map[string]*Rule
}

// NewRegistry compiles every configured registration. It is called once
// at startup; a template that fails to compile aborts construction so the
// process refuses to start with a partially built registry. The registry
// is read-only afterwards and safe for concurrent lookups without
// locking.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	rules := make(map[string]*Rule, len(cfg.Registers))
	for _, register := range cfg.Registers {
		compiled, err := template.Compile(register.Template)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid template for endpoint '%s'", register.Endpoint)
		}
		rules[register.Endpoint] = &Rule{
			Endpoint: register.Endpoint,
			Method:   register.Method,
			Target:   register.Target,
			Template: compiled,
			Retry:    resolveRetry(register.Retry, cfg.Settings),
		}
	}
	return &Registry{rules: rules}, nil
}

// Lookup matches the raw inbound path verbatim: no patterns, no
// trailing-slash normalization.
func (r *Registry) Lookup(path string) (*Rule, bool) {
	rule, ok := r.rules[path]
	return rule, ok
}

// Rules returns all rules ordered by endpoint.
func (r *Registry) Rules() []*Rule {
	rules := make([]*Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Endpoint < rules[j].Endpoint
	})
	return rules
}

func (r *Registry) Size() int {
	return len(r.rules)
}

func resolveRetry(override *config.RetryConfig, settings config.SettingsConfig) config.RetryConfig {
	if override != nil {
		return *override
	}
	return config.RetryConfig{
		Attempts:          settings.RetryAttempts,
		DelayMS:           settings.RetryDelayMS,
		BackoffMultiplier: 1,
	}
}
