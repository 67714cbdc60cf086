package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NetworkError wraps transport-level failures: unreachable host, timeout,
// cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Fields carries per-field validation
// messages echoed by the server, when present.
type ServerError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func AsServer(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// newServerError decodes an error body. The upstream API is not consistent:
// it may reply with {"message": "..."}, {"error": "..."}, a flat object of
// field errors, or plain text.
func newServerError(status int, body []byte) *ServerError {
	se := &ServerError{Status: status, Message: http.StatusText(status)}
	if len(body) == 0 {
		return se
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		se.Message = string(body)
		return se
	}

	fields := make(map[string]string)
	for key, val := range payload {
		text, ok := val.(string)
		if !ok || text == "" {
			continue
		}
		switch key {
		case "message", "error":
			se.Message = text
		default:
			fields[key] = text
		}
	}
	if len(fields) > 0 {
		se.Fields = fields
		if se.Message == http.StatusText(status) {
			se.Message = "validation failed"
		}
	}
	return se
}
