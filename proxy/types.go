package proxy

import "encoding/json"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Status         string          `json:"status"`
	TargetResponse json.RawMessage `json:"target_response"`
}

type DebugResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
