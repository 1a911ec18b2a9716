package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/hermes-io/hermes/pkg/http/response"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func PanicRecovery(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				var err error
				switch v := e.(type) {
				case error:
					err = v
				default:
					err = errors.New(fmt.Sprint(e))
				}

				buf := make([]byte, 2048)
				n := runtime.Stack(buf, false)
				buf = buf[:n]

				zap.S().Errorf("panic recovered: %v\n %s", err, buf)
				response.JSON(w, 500, ErrorResponse{Error: "internal error"})
			}
		}()

		h.ServeHTTP(w, r)
	})
}
