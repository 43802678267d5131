package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type fakeAPI struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeAPI) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func newTestGateway(api completionAPI) *Gateway {
	return &Gateway{
		client:      api,
		model:       "gpt-3.5-turbo",
		maxTokens:   256,
		temperature: 0.7,
		logger:      zap.NewNop(),
	}
}

func TestCompleteReturnsFirstCandidate(t *testing.T) {
	api := &fakeAPI{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "  claro, son 4  "}},
			{Message: openai.ChatCompletionMessage{Content: "otra respuesta"}},
		},
	}}
	g := newTestGateway(api)

	got, err := g.Complete(context.Background(), "cuánto es 2+2")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "claro, son 4" {
		t.Errorf("reply = %q", got)
	}

	if len(api.req.Messages) != 2 {
		t.Fatalf("request has %d messages, want system + user", len(api.req.Messages))
	}
	if api.req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first turn role = %q, want system", api.req.Messages[0].Role)
	}
	if api.req.Messages[1].Content != "cuánto es 2+2" {
		t.Errorf("user turn = %q", api.req.Messages[1].Content)
	}
	if api.req.Model != "gpt-3.5-turbo" || api.req.MaxTokens != 256 {
		t.Errorf("sampling parameters not forwarded: %+v", api.req)
	}
}

func TestCompleteSurfacesTransportError(t *testing.T) {
	g := newTestGateway(&fakeAPI{err: errors.New("connection refused")})

	_, err := g.Complete(context.Background(), "hola")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error should keep the cause, got %v", err)
	}
}

func TestCompleteRejectsEmptyResponses(t *testing.T) {
	cases := []struct {
		name string
		resp openai.ChatCompletionResponse
	}{
		{"no candidates", openai.ChatCompletionResponse{}},
		{"blank text", openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "   "}}},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestGateway(&fakeAPI{resp: c.resp})
			if _, err := g.Complete(context.Background(), "hola"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
