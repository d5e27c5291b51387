package api

import (
	"encoding/json"
	"net/http"

	"github.com/shinigami-rest/shinigami/log"
)

// Envelope wraps every JSON response. Exactly one of Data and Error is set.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func succeed[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

func failure(message string) Envelope[struct{}] {
	return Envelope[struct{}]{Success: false, Error: message}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("write response: %s", err)
	}
}
