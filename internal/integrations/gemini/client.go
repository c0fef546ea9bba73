package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент генеративной модели Gemini
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	log     Logger
}

// NewClient создает новый экземпляр клиента Gemini
func NewClient(ctx context.Context, apiKey, modelName string, timeout time.Duration, log Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	return &Client{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
		log:     log,
	}, nil
}

// GenerateReply отправляет промпт модели и возвращает текст ответа
func (c *Client) GenerateReply(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.log.Error("Gemini: generate content failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	reply := sb.String()
	if reply == "" {
		return "", ErrEmptyResponse
	}

	c.log.Info("Gemini: reply generated, length=%d", len(reply))
	return reply, nil
}

// Close закрывает соединение с API
func (c *Client) Close() error {
	return c.client.Close()
}
