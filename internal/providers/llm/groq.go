package llm

import (
	"context"
	"errors"
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Groq implements Provider against Groq's OpenAI-compatible chat
// completions endpoint.
type Groq struct {
	client oai.Client
	model  string
}

// config holds optional configuration for Groq.
type config struct {
	baseURL string
}

// Option is a functional option for Groq.
type Option func(*config)

// WithBaseURL overrides the default Groq API base URL.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

func NewGroq(apiKey, model string, opts ...Option) (*Groq, error) {
	if apiKey == "" {
		return nil, errors.New("groq: api key must not be empty")
	}
	if model == "" {
		return nil, errors.New("groq: model must not be empty")
	}

	cfg := &config{baseURL: defaultGroqBaseURL}
	for _, o := range opts {
		o(cfg)
	}

	client := oai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(cfg.baseURL),
	)
	return &Groq{client: client, model: model}, nil
}

func (g *Groq) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var messages []oai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, oai.SystemMessage(req.System))
	}
	messages = append(messages, oai.UserMessage(req.User))

	params := oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(g.model),
		Messages: messages,
	}
	if req.Temperature != 0 {
		params.Temperature = param.NewOpt(req.Temperature)
	}
	if req.JSONOnly {
		params.ResponseFormat = oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
