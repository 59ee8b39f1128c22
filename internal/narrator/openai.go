// Package narrator turns play summaries into plain-language commentary using a hosted language model.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 250
	defaultTemperature = 0.7
	defaultTimeout     = 20 * time.Second

	systemPrompt = "You explain American football plays to someone watching their first NFL game. " +
		"Use two or three short sentences, avoid jargon, and define any football term you must use."
)

// ErrEmptyResponse is returned when the model produces no choices or only whitespace.
var ErrEmptyResponse = errors.New("narrator: empty model response")

// Config controls the OpenAI-compatible completion endpoint.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	// Temperature 0 is honored; a negative value selects the default.
	Temperature float64
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// OpenAI narrates plays through the chat completions API.
type OpenAI struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// NewOpenAI builds a narrator. An API key is required.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("narrator: missing api key")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: wireTemperature(cfg.Temperature),
		timeout:     cfg.Timeout,
	}, nil
}

// Model reports the configured model name.
func (n *OpenAI) Model() string {
	return n.model
}

// wireTemperature keeps an explicit 0 on the wire; the request field is omitempty.
func wireTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

// Narrate sends a single prompt and returns the trimmed completion text.
func (n *OpenAI) Narrate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: n.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   n.maxTokens,
		Temperature: n.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("narrator: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
