// Package textgen talks to the remote generative text service. Remote
// failures are reported as one of three sentinel kinds so callers can decide
// whether another model is worth trying.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nutriclinic/config"

	"google.golang.org/genai"
)

var (
	// ErrModelNotFound means the service rejected the model name. Another
	// model may still succeed.
	ErrModelNotFound = errors.New("model not found")
	ErrUnauthorized  = errors.New("generative service rejected credentials")
	ErrTransport     = errors.New("generative service request failed")
)

// Generator turns a prompt into text using the named model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
}

func NewGeminiClient(ctx context.Context, cfg config.GenAIConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{client: client, timeout: cfg.Timeout}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", Classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrTransport, model)
	}
	return text, nil
}

// Classify maps a raw client error onto ErrModelNotFound, ErrUnauthorized
// or ErrTransport, keeping the cause in the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if code, ok := apiErrorCode(err); ok {
		switch code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrModelNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
