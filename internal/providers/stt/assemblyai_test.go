package stt

import (
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

func TestNewAssemblyAI_EmptyKey(t *testing.T) {
	if _, err := NewAssemblyAI(""); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestFromTranscript_Completed(t *testing.T) {
	transcript := aai.Transcript{
		ID:           aai.String("tr_123"),
		Status:       aai.TranscriptStatusCompleted,
		Text:         aai.String("Hello world"),
		LanguageCode: "en",
		Utterances: []aai.TranscriptUtterance{
			{
				Speaker:    aai.String("A"),
				Start:      aai.Int64(0),
				End:        aai.Int64(1200),
				Text:       aai.String("Hello world"),
				Confidence: aai.Float64(0.98),
			},
		},
	}

	got := fromTranscript(transcript)
	if got.ID != "tr_123" || got.Status != StatusCompleted {
		t.Fatalf("unexpected id/status: %q %q", got.ID, got.Status)
	}
	if got.Text != "Hello world" || got.LanguageCode != "en" {
		t.Errorf("unexpected text/language: %q %q", got.Text, got.LanguageCode)
	}
	if len(got.Utterances) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(got.Utterances))
	}
	u := got.Utterances[0]
	if u.Speaker != "A" || u.Start != 0 || u.End != 1200 || u.Confidence != 0.98 {
		t.Errorf("unexpected utterance: %+v", u)
	}
}

func TestFromTranscript_Error(t *testing.T) {
	transcript := aai.Transcript{
		ID:     aai.String("tr_err"),
		Status: aai.TranscriptStatusError,
		Error:  aai.String("audio is unintelligible"),
	}

	got := fromTranscript(transcript)
	if got.Status != StatusError {
		t.Fatalf("expected error status, got %q", got.Status)
	}
	if got.Error != "audio is unintelligible" {
		t.Errorf("unexpected error text: %q", got.Error)
	}
	if got.Text != "" || len(got.Utterances) != 0 {
		t.Error("error result must not carry text or utterances")
	}
}

func TestFromTranscript_NilFields(t *testing.T) {
	got := fromTranscript(aai.Transcript{})
	if got.ID != "" || got.Text != "" || got.Error != "" || len(got.Utterances) != 0 {
		t.Errorf("zero transcript should map to zero result, got %+v", got)
	}
}
