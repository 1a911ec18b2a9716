// Package proxy is the inbound HTTP surface: it matches each request
// against the endpoint registry and drives the dispatch pipeline
// lookup -> parse -> render -> validate -> forward -> respond.
package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/hermes-io/hermes/config"
	"github.com/hermes-io/hermes/deliverer"
	"github.com/hermes-io/hermes/dispatcher"
	"github.com/hermes-io/hermes/pkg/http/middlewares"
	"github.com/hermes-io/hermes/pkg/http/response"
	"github.com/hermes-io/hermes/pkg/template"
	"github.com/hermes-io/hermes/status"
)

type Gateway struct {
	cfg *config.ProxyConfig

	log       *zap.SugaredLogger
	s         *http.Server
	registry  *dispatcher.Registry
	deliverer deliverer.Deliverer
}

type Options struct {
	Cfg         *config.ProxyConfig
	Registry    *dispatcher.Registry
	Deliverer   deliverer.Deliverer
	Middlewares []mux.MiddlewareFunc
}

func NewGateway(opts Options) *Gateway {
	gw := &Gateway{
		cfg:       opts.Cfg,
		log:       zap.S().Named("proxy"),
		registry:  opts.Registry,
		deliverer: opts.Deliverer,
	}

	r := mux.NewRouter()
	r.Use(middlewares.PanicRecovery)
	for _, m := range opts.Middlewares {
		r.Use(m)
	}
	r.HandleFunc("/debug", gw.HandleDebug).Methods("POST")
	if opts.Cfg.HealthCheck {
		r.HandleFunc("/health", status.Health).Methods("GET")
		r.HandleFunc("/ready", status.Ready).Methods("GET")
	}
	r.PathPrefix("/").HandlerFunc(gw.Handle)

	gw.s = &http.Server{
		Handler: r,
		Addr:    opts.Cfg.Listen,

		WriteTimeout: time.Duration(opts.Cfg.TimeoutWrite) * time.Second,
		ReadTimeout:  time.Duration(opts.Cfg.TimeoutRead) * time.Second,
	}

	return gw
}

// Handle runs the dispatch pipeline for a single request. Every step can
// fail and short-circuits to a terminal error response; no state survives
// across requests.
func (gw *Gateway) Handle(w http.ResponseWriter, r *http.Request) {
	rule, ok := gw.registry.Lookup(r.URL.Path)
	if !ok {
		response.JSON(w, http.StatusNotFound, ErrorResponse{Error: "Endpoint not found"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, gw.cfg.MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		if _, ok := err.(*http.MaxBytesError); ok {
			code := http.StatusRequestEntityTooLarge
			response.JSON(w, code, ErrorResponse{Error: http.StatusText(code)})
			return
		}
		response.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		response.JSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Invalid JSON: %s", err),
		})
		return
	}

	rendered, err := rule.Template.Render(template.TemplateData(data))
	if err != nil {
		response.JSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: fmt.Sprintf("Template rendering failed: %s", err),
		})
		return
	}

	// The renderer gives no well-formed-JSON guarantee; a template author
	// can produce broken output and it must be caught here.
	if !gjson.Valid(rendered) {
		response.JSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Rendered template is not valid JSON",
		})
		return
	}

	req := &deliverer.Request{
		URL:     rule.Target.URL,
		Method:  rule.Target.Method,
		Payload: []byte(rendered),
		Headers: rule.Target.Headers,
		Timeout: rule.Timeout(time.Duration(gw.cfg.RequestTimeout) * time.Second),
		Retry:   rule.Retry,
	}

	// Once issued, the forward is allowed to complete even if the inbound
	// connection goes away.
	res := gw.deliverer.Deliver(context.WithoutCancel(r.Context()), req)
	if res.Error != nil {
		if e, ok := res.Error.(*deliverer.UnsupportedMethodError); ok {
			response.JSON(w, http.StatusInternalServerError, ErrorResponse{Error: e.Error()})
			return
		}
		response.JSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: fmt.Sprintf("Failed to send request to target: %s", res.Error),
		})
		return
	}

	gw.log.Debugw("forwarded request",
		"endpoint", rule.Endpoint,
		"target", res.String(),
		"attempts", res.Attempts,
		"latency", res.Latency,
	)

	response.JSON(w, http.StatusOK, SuccessResponse{
		Status:         "success",
		TargetResponse: targetResponse(res.ResponseBody),
	})
}

// targetResponse relays the upstream body as parsed JSON when it is
// valid, otherwise as a JSON string value. The caller always receives a
// JSON-typed target_response whether or not the upstream speaks JSON.
func targetResponse(body []byte) json.RawMessage {
	if gjson.ValidBytes(body) {
		return json.RawMessage(body)
	}
	encoded, err := json.Marshal(string(body))
	if err != nil {
		panic(err)
	}
	return json.RawMessage(encoded)
}

// HandleDebug accepts any body, logs it, and acknowledges. No registry
// lookup, no forwarding.
func (gw *Gateway) HandleDebug(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, gw.cfg.MaxRequestBodySize))
	if err != nil {
		response.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	gw.log.Infof("debug request payload: %s", body)
	response.JSON(w, http.StatusOK, DebugResponse{Status: "success", Message: "Payload logged"})
}

// Handler exposes the gateway's router.
func (gw *Gateway) Handler() http.Handler {
	return gw.s.Handler
}

// Start starts the HTTP server.
func (gw *Gateway) Start() {
	go func() {
		if err := gw.s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Errorf("Failed to start Gateway: %v", err)
			os.Exit(1)
		}
	}()

	gw.log.Infof(`listening on address "%s"`, gw.cfg.Listen)
}

// Stop gracefully shuts down the HTTP server: no new requests are
// accepted and in-flight requests are allowed to finish.
func (gw *Gateway) Stop(ctx context.Context) error {
	return gw.s.Shutdown(ctx)
}
