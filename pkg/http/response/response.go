package response

import (
	"encoding/json"
	"net/http"

	"github.com/hermes-io/hermes/constants"
)

func JSON(w http.ResponseWriter, code int, data interface{}) {
	for _, header := range constants.DefaultResponseHeaders {
		w.Header().Set(header.Name, header.Value)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if data == nil {
		return
	}

	var bytes []byte
	switch v := data.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	default:
		var err error
		bytes, err = json.Marshal(data)
		if err != nil {
			panic(err)
		}
	}
	_, _ = w.Write(bytes)
}

func Text(w http.ResponseWriter, code int, body string) {
	for _, header := range constants.DefaultResponseHeaders {
		w.Header().Set(header.Name, header.Value)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
