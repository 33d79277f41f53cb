package llm

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a 2xx reply whose body could not be used.
var ErrMalformedResponse = errors.New("malformed llm response")

// UpstreamError is returned when the LLM endpoint answered, but not usefully:
// either a non-2xx status or a body without the expected payload.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "llm upstream error"
	}
	msg := fmt.Sprintf("llm upstream error: status=%d", e.StatusCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += " body=" + e.Body
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// TransportError is returned when the LLM endpoint could not be reached or the
// exchange broke off (refused connection, DNS, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e == nil || e.Err == nil {
		return "llm transport error"
	}
	return "llm transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }
