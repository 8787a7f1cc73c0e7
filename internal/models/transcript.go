package models

const (
	TranscriptStatusCompleted = "completed"
	TranscriptStatusError     = "error"
)

// Utterance is one speaker's continuous turn, ordered by start time as
// returned by the provider.
type Utterance struct {
	Speaker    string  `json:"speaker,omitempty"`
	Start      int64   `json:"start"` // milliseconds
	End        int64   `json:"end"`   // milliseconds
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// TranscriptionResult is the normalized terminal outcome of one
// transcription job. Exactly one of {Text, Utterances} or {Error} is
// populated depending on Status.
type TranscriptionResult struct {
	Status       string      `json:"status"`
	TranscriptID string      `json:"transcript_id"`
	Text         string      `json:"text,omitempty"`
	LanguageCode string      `json:"language_code,omitempty"`
	Utterances   []Utterance `json:"utterances,omitempty"`
	Error        string      `json:"error,omitempty"`
}
