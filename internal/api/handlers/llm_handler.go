package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/notetakerhq/notetaker-api/internal/services"
	"github.com/notetakerhq/notetaker-api/internal/utils"
)

type LLMHandler struct {
	svc services.LLMService
	log *logrus.Logger
}

func NewLLMHandler(svc services.LLMService, log *logrus.Logger) *LLMHandler {
	return &LLMHandler{svc: svc, log: log}
}

type TranscriptRequest struct {
	Transcript string `json:"transcript"`
}

type ChatRequest struct {
	TranscriptContext string `json:"transcript_context"`
	UserQuery         string `json:"user_query"`
}

func (h *LLMHandler) Summarize(c *gin.Context) {
	const op = "LLMHandler.Summarize"

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "transcript cannot be empty", nil))
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), req.Transcript)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LLMHandler) ExtractActionItems(c *gin.Context) {
	const op = "LLMHandler.ExtractActionItems"

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "transcript cannot be empty", nil))
		return
	}

	result, err := h.svc.ExtractActionItems(c.Request.Context(), req.Transcript)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LLMHandler) Chat(c *gin.Context) {
	const op = "LLMHandler.Chat"

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if strings.TrimSpace(req.TranscriptContext) == "" || strings.TrimSpace(req.UserQuery) == "" {
		writeError(c, h.log, utils.E(utils.CodeInvalidArgument, op, "transcript context and user query are required", nil))
		return
	}

	result, err := h.svc.AnswerQuery(c.Request.Context(), req.TranscriptContext, req.UserQuery)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
