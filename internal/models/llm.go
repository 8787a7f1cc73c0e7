package models

type SummarizationResult struct {
	Summary string `json:"summary"`
}

// ActionItemsResult holds the extracted action items in transcript order.
// An empty slice means no action items were identified.
type ActionItemsResult struct {
	ActionItems []string `json:"action_items"`
}

type ChatResult struct {
	AIResponse string `json:"ai_response"`
}
