package checkers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestOllamaChecker(t *testing.T) {
	var hadDeadline bool
	c := NewOllamaChecker(pingFunc(func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}))

	assert.Equal(t, "ollama", c.Name())
	assert.NoError(t, c.Check(context.Background()))
	assert.True(t, hadDeadline)
}

func TestOllamaChecker_Timeout(t *testing.T) {
	c := NewOllamaChecker(pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	c.timeout = 10 * time.Millisecond

	err := c.Check(context.Background())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
