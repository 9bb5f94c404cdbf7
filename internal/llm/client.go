// Package llm wraps the content generation service behind a small client.
package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Generator produces free-form text from a prompt via any OpenAI-compatible
// chat completion endpoint (an Ollama /v1 server works fine).
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator builds a Generator against baseURL. An empty baseURL keeps
// the library's default endpoint.
func NewGenerator(baseURL, apiKey, model string) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Generator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Generate asks the model for a completion of the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
