package stt

import (
	"context"
	"io"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Utterance is a speaker-attributed segment as reported by the provider.
type Utterance struct {
	Speaker    string
	Start      int64 // milliseconds
	End        int64 // milliseconds
	Text       string
	Confidence float64
}

// Result is the provider's terminal view of one transcription job. Error is
// the provider-reported failure text when Status is StatusError.
type Result struct {
	ID           string
	Status       Status
	Text         string
	LanguageCode string
	Utterances   []Utterance
	Error        string
}

type Provider interface {
	// Transcribe uploads the media and blocks until the job reaches a
	// terminal status. A non-nil error means the request itself failed;
	// a provider-reported transcription failure comes back as a Result
	// with StatusError.
	Transcribe(ctx context.Context, media io.Reader) (*Result, error)
}
