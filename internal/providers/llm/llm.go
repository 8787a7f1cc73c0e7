package llm

import "context"

// CompletionRequest carries one role-structured prompt. System holds the
// task instructions, User the rendered context/question.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64

	// JSONOnly constrains the model to emit a single JSON object.
	JSONOnly bool
}

type Provider interface {
	// Complete submits the prompt and returns the model's raw text
	// response. Implementors must be safe for concurrent use.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
