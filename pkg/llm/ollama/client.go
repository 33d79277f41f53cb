package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/qagen/pkg/llm"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3"
	DefaultTimeout = 60 * time.Second

	// Generation options are fixed for test-case generation.
	Temperature = 0.2
	NumPredict  = 1000

	generatePath = "/api/generate"
	tagsPath     = "/api/tags"

	// Upstream error bodies are kept for logs only; cap what we hold.
	maxErrorBody = 64 << 10
)

// Client is a minimal Ollama /api/generate client.
type Client struct {
	BaseURL string
	Model   string
	httpDo  *http.Client
}

func New(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithHTTPClient(baseURL, model, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient is intended for tests; it lets callers swap the transport.
func NewWithHTTPClient(baseURL, model string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{BaseURL: baseURL, Model: model, httpDo: httpClient}
}

type options struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options options `json:"options"`
}

type generateResponse struct {
	Model    string  `json:"model"`
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

// Generate sends a single non-streaming prompt and returns the model text.
// Failures are *llm.TransportError when the server could not be reached and
// *llm.UpstreamError when it answered with a bad status or an unusable body.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	data, err := json.Marshal(generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Stream: false,
		Options: options{
			Temperature: Temperature,
			NumPredict:  NumPredict,
		},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+generatePath, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", &llm.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &llm.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}
	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &llm.UpstreamError{StatusCode: resp.StatusCode, Body: truncate(body), Err: fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)}
	}
	if out.Response == nil {
		return "", &llm.UpstreamError{StatusCode: resp.StatusCode, Body: truncate(body), Err: fmt.Errorf("%w: missing response field", llm.ErrMalformedResponse)}
	}
	return *out.Response, nil
}

// Ping checks that the Ollama server answers on /api/tags.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+tagsPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return &llm.TransportError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &llm.UpstreamError{StatusCode: resp.StatusCode}
	}
	return nil
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		b = b[:maxErrorBody]
	}
	return string(b)
}
