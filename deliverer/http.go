package deliverer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hermes-io/hermes/constants"
	"github.com/hermes-io/hermes/pkg/retry"
)

// SupportedMethods is the exhaustive set of outbound verbs a target may
// configure.
var SupportedMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("Unsupported HTTP method: %s", e.Method)
}

// HTTPDeliverer delivers via HTTP
type HTTPDeliverer struct {
	defaultTimeout time.Duration
	client         *http.Client
	log            *zap.SugaredLogger
}

type Options struct {
	// DefaultTimeout bounds calls whose request declares no timeout.
	DefaultTimeout time.Duration
}

func NewHTTPDeliverer(opts Options) *HTTPDeliverer {
	return &HTTPDeliverer{
		defaultTimeout: opts.DefaultTimeout,
		client:         &http.Client{},
		log:            zap.S().Named("deliverer"),
	}
}

// Deliver issues the outbound call. Transport failures are retried per
// req.Retry with exponential backoff; a received HTTP response of any
// status code counts as delivery and is never retried.
func (d *HTTPDeliverer) Deliver(ctx context.Context, req *Request) (res *Response) {
	res = &Response{Request: req}

	method := strings.ToUpper(req.Method)
	if !slices.Contains(SupportedMethods, method) {
		res.Error = &UnsupportedMethodError{Method: method}
		return
	}

	retrier := retry.NewRetry(retry.BackoffStrategy,
		retry.WithMaxAttempts(max(req.Retry.Attempts, 1)),
		retry.WithBaseDelay(time.Duration(req.Retry.DelayMS)*time.Millisecond),
		retry.WithMultiplier(max(req.Retry.BackoffMultiplier, 1)),
	)

	start := time.Now()
	defer func() {
		res.Latency = time.Since(start)
	}()

	for {
		res.Attempts++
		err := d.deliverOnce(ctx, method, req, res)
		if err == nil {
			res.Error = nil
			return
		}
		res.Error = err

		delay := retrier.NextDelay(res.Attempts)
		if delay == retry.Stop {
			return
		}
		d.log.Debugf("delivery to %s failed (attempt %d): %v; retrying in %s", req.URL, res.Attempts, err, delay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func (d *HTTPDeliverer) deliverOnce(ctx context.Context, method string, req *Request, res *Response) error {
	ctx, cancel := context.WithTimeout(ctx, timeoutOr(req.Timeout, d.defaultTimeout))
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, method, req.URL, bytes.NewReader(req.Payload))
	if err != nil {
		return err
	}
	for _, header := range constants.DefaultForwarderRequestHeaders {
		request.Header.Set(header.Name, header.Value)
	}
	for name, value := range req.Headers {
		request.Header.Set(name, value)
	}

	response, err := d.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	res.StatusCode = response.StatusCode
	res.Header = response.Header
	res.ResponseBody = body
	return nil
}

func timeoutOr(timeout, fallback time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return fallback
}
