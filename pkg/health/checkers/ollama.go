package checkers

import (
	"context"
	"time"
)

// Pinger is implemented by LLM clients that can probe their server.
type Pinger interface {
	Ping(ctx context.Context) error
}

type OllamaChecker struct {
	client  Pinger
	timeout time.Duration
}

func NewOllamaChecker(client Pinger) *OllamaChecker {
	return &OllamaChecker{client: client, timeout: 2 * time.Second}
}

func (c *OllamaChecker) Name() string { return "ollama" }

func (c *OllamaChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Ping(ctx)
}
