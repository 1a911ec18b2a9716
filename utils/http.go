package utils

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

func HeaderMap(header http.Header) map[string]string {
	headers := make(map[string]string)
	for name, values := range header {
		headers[name] = strings.Join(values, ",")
	}
	return headers
}

func ListenAddrToURL(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return "http://" + listen
	}
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}
