package stt

import (
	"context"
	"errors"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// AssemblyAI implements Provider with speaker diarization and automatic
// language detection enabled on every job.
type AssemblyAI struct {
	client *aai.Client
}

func NewAssemblyAI(apiKey string) (*AssemblyAI, error) {
	if apiKey == "" {
		return nil, errors.New("assemblyai: api key must not be empty")
	}
	return &AssemblyAI{client: aai.NewClient(apiKey)}, nil
}

func (p *AssemblyAI) Transcribe(ctx context.Context, media io.Reader) (*Result, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		LanguageDetection: aai.Bool(true),
	}

	// Uploads the media and polls until the transcript is completed or
	// errored.
	transcript, err := p.client.Transcripts.TranscribeFromReader(ctx, media, params)
	if err != nil {
		return nil, err
	}
	return fromTranscript(transcript), nil
}

func fromTranscript(t aai.Transcript) *Result {
	out := &Result{
		ID:           deref(t.ID),
		Status:       Status(t.Status),
		Text:         deref(t.Text),
		LanguageCode: string(t.LanguageCode),
		Error:        deref(t.Error),
	}
	for _, u := range t.Utterances {
		out.Utterances = append(out.Utterances, Utterance{
			Speaker:    deref(u.Speaker),
			Start:      derefInt64(u.Start),
			End:        derefInt64(u.End),
			Text:       deref(u.Text),
			Confidence: derefFloat64(u.Confidence),
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func derefFloat64(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
