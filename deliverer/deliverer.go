// Package deliverer sends rendered payloads to upstream targets over
// HTTP.
package deliverer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hermes-io/hermes/config"
)

type Deliverer interface {
	Deliver(ctx context.Context, req *Request) *Response
}

// Request is an outbound HTTP request.
type Request struct {
	URL     string
	Method  string
	Payload []byte
	Headers map[string]string
	// Timeout bounds this call; zero falls back to the deliverer default.
	Timeout time.Duration
	// Retry bounds re-delivery on transport failures. Zero attempts means
	// a single delivery with no retries.
	Retry config.RetryConfig
}

// Response is the upstream HTTP response, or the transport error that
// prevented one.
type Response struct {
	StatusCode   int
	Header       http.Header
	ResponseBody []byte
	Request      *Request
	Latency      time.Duration
	Attempts     int
	Error        error
}

func (r *Response) Is2xx() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s %d", r.Request.Method, r.Request.URL, r.StatusCode)
}
