package dispatcher

import (
	"time"

	"github.com/hermes-io/hermes/config"
	"github.com/hermes-io/hermes/pkg/template"
)

// Rule is a compiled webhook registration: an inbound endpoint bound to an
// outbound target and a pre-compiled transformation template.
type Rule struct {
	// Endpoint is the inbound path and the unique lookup key.
	Endpoint string
	// Method is the declared inbound method. Informational only; the
	// dispatcher does not filter inbound traffic by it.
	Method   string
	Target   config.TargetConfig
	Template *template.Template
	// Retry is the resolved retry policy: the rule-level override when
	// declared, otherwise the global settings default.
	Retry config.RetryConfig
}

// Timeout returns the per-target forward timeout, falling back to the
// process-wide default when the target does not declare one.
func (r *Rule) Timeout(defaultTimeout time.Duration) time.Duration {
	if r.Target.TimeoutSeconds > 0 {
		return time.Duration(r.Target.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}
