// Package agent relays chat messages to a remote conversational agent.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Response is the agent's output object, passed through unchanged.
type Response map[string]any

type Executor interface {
	Invoke(ctx context.Context, input string) (Response, error)
}

// RemoteExecutor calls an agent served over the LangServe runnable protocol:
// POST <baseURL>/invoke with {"input": {"input": <message>}}.
type RemoteExecutor struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRemoteExecutor(baseURL, apiKey string, timeout time.Duration) *RemoteExecutor {
	return &RemoteExecutor{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type invokeRequest struct {
	Input struct {
		Input string `json:"input"`
	} `json:"input"`
}

type invokeResponse struct {
	Output Response `json:"output"`
}

func (e *RemoteExecutor) Invoke(ctx context.Context, input string) (Response, error) {
	var body invokeRequest
	body.Input.Input = input

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("agent: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/invoke", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("agent: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out invokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("agent: failed to decode response: %w", err)
	}
	if out.Output == nil {
		return nil, fmt.Errorf("agent response has no output")
	}
	return out.Output, nil
}
