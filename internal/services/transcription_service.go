package services

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/notetakerhq/notetaker-api/internal/models"
	"github.com/notetakerhq/notetaker-api/internal/providers/stt"
	"github.com/notetakerhq/notetaker-api/internal/utils"
)

// UploadedMedia is the transient uploaded payload. It is owned by the
// transcription service for the duration of one request.
type UploadedMedia struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type TranscriptionService interface {
	Transcribe(ctx context.Context, media UploadedMedia) (*models.TranscriptionResult, error)
}

type transcriptionService struct {
	provider  stt.Provider
	uploadDir string
	log       *logrus.Logger
}

// NewTranscriptionService wires the transcription mediator. A nil provider
// marks the service unconfigured; operations answer UNAVAILABLE without
// touching the network.
func NewTranscriptionService(provider stt.Provider, uploadDir string, log *logrus.Logger) TranscriptionService {
	return &transcriptionService{provider: provider, uploadDir: uploadDir, log: log}
}

func (s *transcriptionService) Transcribe(ctx context.Context, media UploadedMedia) (*models.TranscriptionResult, error) {
	const op = "TranscriptionService.Transcribe"

	if s.provider == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "transcription service is not configured", nil)
	}

	path, size, err := s.stage(media)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "could not stage uploaded media", err)
	}
	// Removes the staged file exactly once on every exit path. On success
	// this fires right after the result is built; on failure it fires
	// before the error propagates.
	defer s.cleanup(path)

	if size == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "uploaded media is empty", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "could not reopen staged media", err)
	}
	defer f.Close()

	s.log.WithFields(logrus.Fields{
		"filename": media.Filename,
		"staged":   path,
		"bytes":    size,
	}).Info("submitting media for transcription")

	res, err := s.provider.Transcribe(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "transcription request failed", err)
	}

	if res.Status == stt.StatusError {
		s.log.WithFields(logrus.Fields{
			"transcript_id": res.ID,
			"error":         res.Error,
		}).Warn("provider reported transcription error")
		return &models.TranscriptionResult{
			Status:       models.TranscriptStatusError,
			TranscriptID: res.ID,
			Error:        res.Error,
		}, nil
	}

	out := &models.TranscriptionResult{
		Status:       models.TranscriptStatusCompleted,
		TranscriptID: res.ID,
		Text:         res.Text,
		LanguageCode: res.LanguageCode,
	}
	for _, u := range res.Utterances {
		out.Utterances = append(out.Utterances, models.Utterance{
			Speaker:    u.Speaker,
			Start:      u.Start,
			End:        u.End,
			Text:       u.Text,
			Confidence: u.Confidence,
		})
	}

	s.log.WithFields(logrus.Fields{
		"transcript_id": res.ID,
		"language_code": res.LanguageCode,
		"utterances":    len(out.Utterances),
	}).Info("transcription completed")
	return out, nil
}

// stage persists the payload to a uniquely named file under the upload
// directory and returns its path and size.
func (s *transcriptionService) stage(media UploadedMedia) (string, int64, error) {
	name := uuid.NewString() + filepath.Ext(media.Filename)
	path := filepath.Join(s.uploadDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	n, err := io.Copy(f, media.Data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.cleanup(path)
		return "", 0, err
	}
	return path, n, nil
}

// cleanup removal failures are logged, never surfaced.
func (s *transcriptionService) cleanup(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).WithField("path", path).Error("failed to remove staged media")
	}
}
