// Package ai wraps the remote chat-completion service.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `Eres un asistente personal que responde mensajes de WhatsApp.
Responde de forma breve, amable y en el idioma del usuario.
No uses formato markdown; escribe texto plano apto para un chat.`

// completionAPI is the slice of the OpenAI client the gateway uses.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Gateway submits user text to the completion service with a fixed system
// prompt and fixed sampling parameters. It reports failures to the caller
// instead of substituting fallback text, so the router decides what the
// user sees.
type Gateway struct {
	client      completionAPI
	model       string
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

func NewGateway(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *Gateway {
	return &Gateway{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
		logger:      logger,
	}
}

// Complete returns the first candidate's text for the given user message.
func (g *Gateway) Complete(ctx context.Context, userText string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty candidate list")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("chat completion: empty reply")
	}

	g.logger.Debug("completion ok",
		zap.String("model", g.model),
		zap.Int("reply_len", len(text)))
	return text, nil
}
