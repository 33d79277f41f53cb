package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	err := fmt.Errorf("generate: %w", &UpstreamError{StatusCode: 503, Body: "overloaded"})

	var ue *UpstreamError
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, 503, ue.StatusCode)
	assert.Contains(t, err.Error(), "status=503")
	assert.Contains(t, err.Error(), "overloaded")
}

func TestUpstreamError_Malformed(t *testing.T) {
	err := &UpstreamError{StatusCode: 200, Body: "not json", Err: ErrMalformedResponse}
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestTransportError(t *testing.T) {
	err := &TransportError{Err: context.DeadlineExceeded}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "llm transport error: context deadline exceeded", err.Error())

	var nilErr *TransportError
	assert.Equal(t, "llm transport error", nilErr.Error())
}
