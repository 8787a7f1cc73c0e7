package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notetakerhq/notetaker-api/internal/models"
	"github.com/notetakerhq/notetaker-api/internal/services"
	"github.com/notetakerhq/notetaker-api/internal/utils"
)

// acceptedMediaTypes is the admission set for uploads. The provider can
// extract audio tracks from the video containers.
var acceptedMediaTypes = map[string]struct{}{
	"audio/mpeg":         {}, // .mp3
	"audio/wav":          {}, // .wav
	"audio/x-wav":        {}, // .wav
	"audio/mp4":          {}, // .m4a
	"audio/ogg":          {}, // .ogg, .opus
	"audio/webm":         {}, // .webm
	"video/mp4":          {}, // .mp4
	"video/webm":         {}, // .webm
	"video/quicktime":    {}, // .mov
	"video/x-matroska":   {}, // .mkv
}

// AcceptedMediaType reports whether the declared content type is in the
// admission set.
func AcceptedMediaType(contentType string) bool {
	_, ok := acceptedMediaTypes[contentType]
	return ok
}

type TranscriptionHandler struct {
	svc services.TranscriptionService
	log *logrus.Logger
}

func NewTranscriptionHandler(svc services.TranscriptionService, log *logrus.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{svc: svc, log: log}
}

func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	const op = "TranscriptionHandler.Transcribe"

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "no file provided", err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !AcceptedMediaType(contentType) {
		writeError(c, h.log, utils.E(utils.CodeUnsupportedMedia, op,
			fmt.Sprintf("unsupported file type: %s", contentType), nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, h.log, utils.E(utils.CodeInternal, op, "could not read uploaded file", err))
		return
	}
	defer f.Close()

	h.log.WithFields(logrus.Fields{
		"filename":     fileHeader.Filename,
		"content_type": contentType,
		"size":         fileHeader.Size,
	}).Info("received file for transcription")

	result, err := h.svc.Transcribe(c.Request.Context(), services.UploadedMedia{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        f,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if result.Status == models.TranscriptStatusError {
		writeError(c, h.log, utils.E(utils.CodeUnprocessable, op,
			"transcription failed: "+result.Error, nil))
		return
	}

	c.JSON(http.StatusOK, result)
}
