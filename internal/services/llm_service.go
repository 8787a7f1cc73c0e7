package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/notetakerhq/notetaker-api/internal/models"
	"github.com/notetakerhq/notetaker-api/internal/providers/llm"
	"github.com/notetakerhq/notetaker-api/internal/utils"
)

const llmTemperature = 0.1

const summarySystemPrompt = `You are an expert meeting assistant. Your task is to analyze the provided transcript and generate ONLY a concise summary of the main discussion points, key decisions, and overall outcome. Focus on clarity and accuracy. Do not include action items or any extra commentary.`

const actionItemsSystemPrompt = `You are an expert meeting assistant focusing ONLY on identifying action items from the provided transcript.
Extract specific, concrete tasks or actions assigned during the meeting. Include the owner if mentioned.
Respond with a single JSON object matching this schema exactly:
{"action_items": ["<action item>", "..."]}
The "action_items" field must be a JSON array of strings, in the order the items appear in the transcript.
If NO specific action items are identified, respond with {"action_items": []}.
Do not include any text outside the JSON object.`

const chatSystemPrompt = `You are an AI assistant answering questions based *only* on the provided meeting transcript context. Be concise and directly address the user's query using information from the transcript. If the answer cannot be found in the transcript, explicitly state "The answer is not available in the provided transcript context." Do not make assumptions or use external knowledge.`

type LLMService interface {
	Summarize(ctx context.Context, transcript string) (*models.SummarizationResult, error)
	ExtractActionItems(ctx context.Context, transcript string) (*models.ActionItemsResult, error)
	AnswerQuery(ctx context.Context, transcriptContext, userQuery string) (*models.ChatResult, error)
}

type llmService struct {
	provider llm.Provider
	log      *logrus.Logger
}

// NewLLMService wires the LLM mediator. A nil provider marks the service
// unconfigured; all operations answer UNAVAILABLE without touching the
// network.
func NewLLMService(provider llm.Provider, log *logrus.Logger) LLMService {
	return &llmService{provider: provider, log: log}
}

func (s *llmService) Summarize(ctx context.Context, transcript string) (*models.SummarizationResult, error) {
	const op = "LLMService.Summarize"

	if err := s.ready(op); err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "transcript cannot be empty", nil)
	}

	raw, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:      summarySystemPrompt,
		User:        "Transcript:\n---\n" + transcript + "\n---\nBased on the transcript provided, generate the concise summary.",
		Temperature: llmTemperature,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to generate summary", err)
	}

	s.log.WithField("summary_len", len(raw)).Info("summary generated")
	return &models.SummarizationResult{Summary: strings.TrimSpace(raw)}, nil
}

func (s *llmService) ExtractActionItems(ctx context.Context, transcript string) (*models.ActionItemsResult, error) {
	const op = "LLMService.ExtractActionItems"

	if err := s.ready(op); err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "transcript cannot be empty", nil)
	}

	raw, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:      actionItemsSystemPrompt,
		User:        "Transcript:\n---\n" + transcript + "\n---\nBased *only* on the transcript provided, extract all specific action items and format them as JSON according to the schema.",
		Temperature: llmTemperature,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to extract action items", err)
	}

	items, err := parseActionItems(raw)
	if err != nil {
		s.log.WithError(err).WithField("response", raw).Error("action items response did not match schema")
		return nil, utils.E(utils.CodeParseFailure, op, "failed to parse action items from model response", err)
	}

	s.log.WithField("action_items", len(items)).Info("action items extracted")
	return &models.ActionItemsResult{ActionItems: items}, nil
}

func (s *llmService) AnswerQuery(ctx context.Context, transcriptContext, userQuery string) (*models.ChatResult, error) {
	const op = "LLMService.AnswerQuery"

	if err := s.ready(op); err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcriptContext) == "" || strings.TrimSpace(userQuery) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "transcript context and user query cannot be empty", nil)
	}

	raw, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:      chatSystemPrompt,
		User:        "Meeting Transcript Context:\n---\n" + transcriptContext + "\n---\n" + userQuery,
		Temperature: llmTemperature,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to get chat response", err)
	}

	return &models.ChatResult{AIResponse: strings.TrimSpace(raw)}, nil
}

func (s *llmService) ready(op string) error {
	if s.provider == nil {
		return utils.E(utils.CodeUnavailable, op, "LLM service is not configured", nil)
	}
	return nil
}

type actionItemsPayload struct {
	ActionItems []string `json:"action_items"`
}

// parseActionItems coerces the model response into the declared schema and
// drops empty or whitespace-only entries, preserving order.
func parseActionItems(raw string) ([]string, error) {
	var payload actionItemsPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return nil, err
	}

	items := make([]string, 0, len(payload.ActionItems))
	for _, item := range payload.ActionItems {
		if strings.TrimSpace(item) == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// stripCodeFence unwraps a response wrapped in a markdown code fence, with
// or without a language tag. Models occasionally do this even when asked
// for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
